package controllers

import (
	"github.com/gin-gonic/gin"

	"valuationbackend/services"
	"valuationbackend/utils/helpers"
)

type ValuationControllerI interface {
	CalculateValuation(ctx *gin.Context)
}

type valuationController struct{}

var ValuationController ValuationControllerI = &valuationController{}

// CalculateValuation normalizes the submitted financial mapping and
// returns the three-method valuation with its range. Normalization is
// total, so any well-formed JSON object yields a result.
func (v *valuationController) CalculateValuation(ctx *gin.Context) {
	var raw map[string]interface{}
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	record := helpers.NormalizeRecord(raw)
	validation := services.ValidationService.Validate(ctx, record)
	result := services.ValuationService.Compute(record)
	summary := services.ValuationService.ExecutiveSummary(record, result)

	services.LogActivity("valuation", record.CompanyName, true)

	ctx.JSON(200, gin.H{
		"status":            "success",
		"valuation_results": result,
		"executive_summary": summary,
		"company_data":      record,
		"ai_validation":     validation,
	})
}
