package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	kafka_client "valuationbackend/clients/kafka"
	"valuationbackend/services"
	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

type ReportControllerI interface {
	GenerateReport(ctx *gin.Context)
	DownloadReport(ctx *gin.Context)
}

type reportController struct{}

var ReportController ReportControllerI = &reportController{}

type reportRequest struct {
	CompanyData      map[string]interface{} `json:"company_data"`
	ValuationResults types.ValuationResult  `json:"valuation_results"`
	SwotAnalysis     types.SwotAnalysis     `json:"swot_analysis"`
}

// GenerateReport assembles the full text report from the client-held
// company data, valuation, and SWOT analysis, stores it under a fresh
// filename, and returns the download reference.
func (r *reportController) GenerateReport(ctx *gin.Context) {
	var req reportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	record := helpers.NormalizeRecord(req.CompanyData)

	// Clients that skip the valuation step send an empty result; the
	// report is still expected to carry figures.
	valuation := req.ValuationResults
	if valuation.Methodology == "" {
		valuation = services.ValuationService.Compute(record)
	}

	content := services.ReportService.Assemble(record, valuation, req.SwotAnalysis, time.Now())

	filename, err := services.ReportStore.Save(content)
	if err != nil {
		zap.L().Error("Report save failed", zap.Error(err))
		services.LogActivity("report_generation", record.CompanyName, false)
		ctx.JSON(500, gin.H{"error": "Report generation failed"})
		return
	}

	kafka_client.SendMessage(types.ValuationEvent{
		EventType: "report_generated",
		Company:   record.CompanyName,
		Filename:  filename,
		Success:   true,
		Timestamp: time.Now(),
	})
	services.LogActivity("report_generation", record.CompanyName, true)

	ctx.JSON(200, gin.H{
		"status":          "success",
		"report_filename": filename,
		"download_url":    "/api/report/download/" + filename,
		"message":         "Valuation report generated successfully",
	})
}

// DownloadReport streams a stored report back as a text attachment.
// Every lookup failure surfaces as the same not-found condition.
func (r *reportController) DownloadReport(ctx *gin.Context) {
	filename := ctx.Param("filename")

	content, err := services.ReportStore.Load(filename)
	if err != nil {
		if !errors.Is(err, services.ErrReportNotFound) {
			zap.L().Error("Report load failed", zap.String("filename", filename), zap.Error(err))
		}
		ctx.JSON(404, gin.H{"error": "Report not found"})
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(200, "text/plain; charset=utf-8", []byte(content))
}
