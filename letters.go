package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/billing_backend/config"
	"bitbucket.org/mmdatafocus/billing_backend/models"
	"bitbucket.org/mmdatafocus/billing_backend/pdfgen"
)

func createLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewLetter
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		letter, err := models.CreateLetter(c.Request.Context(), &input)
		if err != nil {
			notFoundOrServerError(c, err, "failed to create letter")
			return
		}
		c.JSON(http.StatusCreated, letter)
	}
}

func listLettersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		letters, err := models.GetLetters(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch letters")
			return
		}
		c.JSON(http.StatusOK, letters)
	}
}

func getLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		letter, err := models.GetLetter(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Letter not found")
			return
		}
		c.JSON(http.StatusOK, letter)
	}
}

func updateLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewLetter
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		letter, err := models.UpdateLetter(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			notFoundOrServerError(c, err, "Letter not found")
			return
		}
		c.JSON(http.StatusOK, letter)
	}
}

func deleteLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteLetter(c.Request.Context(), c.Param("id")); err != nil {
			notFoundOrServerError(c, err, "Letter not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Letter deleted successfully"})
	}
}

func letterPdfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		letter, company, err := models.ResolveLetterForRender(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Letter not found")
			return
		}
		pdfBytes, err := pdfgen.Letter(letter, company)
		if err != nil {
			config.LogError(config.GetLogger(), "letters.go", "letterPdfHandler", "render pdf", letter.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to generate PDF"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=letter_%s.pdf", letter.LetterNumber))
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}
