package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/billing_backend/config"
	"bitbucket.org/mmdatafocus/billing_backend/models"
	"bitbucket.org/mmdatafocus/billing_backend/models/reports"
	"bitbucket.org/mmdatafocus/billing_backend/pdfgen"
)

func createQuotationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewQuotation
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		quotation, err := models.CreateQuotation(c.Request.Context(), &input)
		if err != nil {
			if draftError(c, err) {
				return
			}
			notFoundOrServerError(c, err, "failed to create quotation")
			return
		}
		c.JSON(http.StatusCreated, quotation)
	}
}

func listQuotationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		quotations, err := models.GetQuotations(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch quotations")
			return
		}
		c.JSON(http.StatusOK, quotations)
	}
}

func getQuotationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		quotation, err := models.GetQuotation(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Quotation not found")
			return
		}
		c.JSON(http.StatusOK, quotation)
	}
}

func updateQuotationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewQuotation
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		quotation, err := models.UpdateQuotation(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			if draftError(c, err) {
				return
			}
			notFoundOrServerError(c, err, "Quotation not found")
			return
		}
		c.JSON(http.StatusOK, quotation)
	}
}

func deleteQuotationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteQuotation(c.Request.Context(), c.Param("id")); err != nil {
			notFoundOrServerError(c, err, "Quotation not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted successfully"})
	}
}

func quotationPdfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		quotation, company, err := models.ResolveQuotationForRender(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Quotation not found")
			return
		}
		pdfBytes, err := pdfgen.Quotation(quotation, company)
		if err != nil {
			config.LogError(config.GetLogger(), "quotations.go", "quotationPdfHandler", "render pdf", quotation.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to generate PDF"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation_%s.pdf", quotation.QuotationNumber))
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}

func exportQuotationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		quotations, err := models.GetQuotations(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch quotations")
			return
		}
		buf, err := reports.BuildQuotationRegister(quotations)
		if err != nil {
			config.LogError(config.GetLogger(), "quotations.go", "exportQuotationsHandler", "build register", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to export quotations"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=quotations.xlsx")
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
