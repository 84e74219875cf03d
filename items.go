package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

func createItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewItem
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		item, err := models.CreateItem(c.Request.Context(), &input)
		if err != nil {
			notFoundOrServerError(c, err, "failed to create item")
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func listItemsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := models.GetItems(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch items")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := models.GetItem(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Item not found")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func updateItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewItem
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		item, err := models.UpdateItem(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			notFoundOrServerError(c, err, "Item not found")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deleteItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
			notFoundOrServerError(c, err, "Item not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}
