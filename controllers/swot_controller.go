package controllers

import (
	"github.com/gin-gonic/gin"

	"valuationbackend/services"
	"valuationbackend/utils/helpers"
)

type SwotControllerI interface {
	GenerateSwot(ctx *gin.Context)
}

type swotController struct{}

var SwotController SwotControllerI = &swotController{}

// GenerateSwot returns a SWOT analysis for the submitted financial
// mapping. Enrichment failures degrade to the deterministic template,
// so this endpoint always answers 200 with four complete lists.
func (s *swotController) GenerateSwot(ctx *gin.Context) {
	var raw map[string]interface{}
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	record := helpers.NormalizeRecord(raw)
	analysis := services.SwotService.Generate(ctx, record)

	services.LogActivity("swot", record.CompanyName, true)

	ctx.JSON(200, gin.H{
		"status":        "success",
		"swot_analysis": analysis,
	})
}
