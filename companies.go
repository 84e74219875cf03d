package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/billing_backend/config"
	"bitbucket.org/mmdatafocus/billing_backend/models"
	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

// bindError maps a gin binding failure to a 400 with per-field tags when the
// payload failed struct validation, or a generic message otherwise.
func bindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "validation failed", "errors": utils.ProcessValidationErrors(err)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
}

func notFoundOrServerError(c *gin.Context, err error, detail string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": detail})
		return
	}
	config.LogError(config.GetLogger(), "handlers", "notFoundOrServerError", detail, nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

func createCompanyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewCompany
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		company, err := models.CreateCompany(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, company)
	}
}

func listCompaniesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		companies, err := models.GetCompanies(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch companies")
			return
		}
		c.JSON(http.StatusOK, companies)
	}
}

func getCompanyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		company, err := models.GetCompany(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Company not found")
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

func updateCompanyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewCompany
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		company, err := models.UpdateCompany(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			notFoundOrServerError(c, err, "Company not found")
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

func deleteCompanyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
			notFoundOrServerError(c, err, "Company not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
	}
}
