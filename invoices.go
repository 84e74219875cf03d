package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/billing_backend/config"
	"bitbucket.org/mmdatafocus/billing_backend/models"
	"bitbucket.org/mmdatafocus/billing_backend/models/reports"
	"bitbucket.org/mmdatafocus/billing_backend/pdfgen"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// draftError maps a composition-engine validation failure to a 422 carrying
// the first failure as the user-visible message plus the complete error set.
// The submitted draft is never partially persisted: the caller's state is
// preserved for correction and resubmission.
func draftError(c *gin.Context, err error) bool {
	var validationErr *models.DraftValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": validationErr.Error(),
			"errors": validationErr.Errors,
		})
		return true
	}
	return false
}

func createInvoiceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewInvoice
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		invoice, err := models.CreateInvoice(c.Request.Context(), &input)
		if err != nil {
			if draftError(c, err) {
				return
			}
			notFoundOrServerError(c, err, "failed to create invoice")
			return
		}
		c.JSON(http.StatusCreated, invoice)
	}
}

func listInvoicesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		invoices, err := models.GetInvoices(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch invoices")
			return
		}
		c.JSON(http.StatusOK, invoices)
	}
}

func getInvoiceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		invoice, err := models.GetInvoice(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Invoice not found")
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

func updateInvoiceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewInvoice
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		invoice, err := models.UpdateInvoice(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			if draftError(c, err) {
				return
			}
			notFoundOrServerError(c, err, "Invoice not found")
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

func deleteInvoiceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
			notFoundOrServerError(c, err, "Invoice not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
	}
}

func invoicePdfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		invoice, company, err := models.ResolveInvoiceForRender(c.Request.Context(), c.Param("id"))
		if err != nil {
			notFoundOrServerError(c, err, "Invoice not found")
			return
		}
		pdfBytes, err := pdfgen.Invoice(invoice, company)
		if err != nil {
			config.LogError(config.GetLogger(), "invoices.go", "invoicePdfHandler", "render pdf", invoice.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to generate PDF"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", invoice.InvoiceNumber))
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}

func exportInvoicesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		invoices, err := models.GetInvoices(c.Request.Context())
		if err != nil {
			notFoundOrServerError(c, err, "failed to fetch invoices")
			return
		}
		buf, err := reports.BuildInvoiceRegister(invoices)
		if err != nil {
			config.LogError(config.GetLogger(), "invoices.go", "exportInvoicesHandler", "build register", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to export invoices"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=invoices.xlsx")
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
