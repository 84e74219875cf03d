package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

type recalculateRequest struct {
	Kind         string                   `json:"kind"`
	Items        []models.NewDocumentItem `json:"items"`
	TaxRate      interface{}              `json:"tax_rate"`
	DiscountRate interface{}              `json:"discount_rate"`
}

// recalculateDraftHandler returns server-side derived totals for an in-flight
// draft so clients never have to duplicate the pricing math. Malformed
// numeric fields coerce to zero rather than rejecting the payload, matching
// the editing behavior everywhere else.
func recalculateDraftHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recalculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		kind := models.DraftKindInvoice
		if req.Kind == string(models.DraftKindQuotation) {
			kind = models.DraftKindQuotation
		}
		draft := models.RecalculateDraft(kind, req.Items, req.TaxRate, req.DiscountRate)
		c.JSON(http.StatusOK, gin.H{
			"items":           draft.Items,
			"subtotal":        draft.Subtotal,
			"discount_rate":   draft.DiscountRate,
			"discount_amount": draft.DiscountAmount,
			"tax_rate":        draft.TaxRate,
			"tax_amount":      draft.TaxAmount,
			"total":           draft.Total,
		})
	}
}
