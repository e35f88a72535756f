package services

import (
	"strings"
	"testing"
	"time"

	"valuationbackend/types"
)

var reportSections = []string{
	"BUSINESS VALUATION REPORT",
	"COMPANY OVERVIEW",
	"VALUATION RESULTS",
	"EXECUTIVE SUMMARY",
	"SWOT ANALYSIS",
	"METHODOLOGY & ASSUMPTIONS",
	"RECOMMENDATIONS",
	"DISCLAIMER",
}

func TestAssemble_AllSectionsPresent(t *testing.T) {
	record := types.FinancialRecord{CompanyName: "Acme", Industry: "Retail", Revenue: 1000}
	valuation := ValuationService.Compute(record)
	swot := FallbackSwot(record)

	content := ReportService.Assemble(record, valuation, swot, time.Now())

	for _, section := range reportSections {
		if !strings.Contains(content, section) {
			t.Errorf("Expected section %q in report", section)
		}
	}
}

func TestAssemble_EmptyRecordStillEmitsAllSections(t *testing.T) {
	record := types.FinancialRecord{}
	valuation := ValuationService.Compute(record)

	content := ReportService.Assemble(record, valuation, types.SwotAnalysis{}, time.Now())

	for _, section := range reportSections {
		if !strings.Contains(content, section) {
			t.Errorf("Expected section %q in report for empty record", section)
		}
	}
	if !strings.Contains(content, "Company: N/A") {
		t.Error("Expected absent company name to render as N/A")
	}
	if !strings.Contains(content, "Industry: N/A") {
		t.Error("Expected absent industry to render as N/A")
	}
	if !strings.Contains(content, "Annual Revenue: $0") {
		t.Error("Expected zero revenue to render as $0")
	}
	if !strings.Contains(content, "Not available") {
		t.Error("Expected empty SWOT lists to render placeholders")
	}
}

func TestAssemble_FormatsCurrencyWithSeparators(t *testing.T) {
	record := types.FinancialRecord{
		CompanyName: "Test Manufacturing Co",
		Industry:    "Manufacturing",
		Revenue:     5000000,
		Ebitda:      800000,
		TotalAssets: 3000000,
	}
	valuation := ValuationService.Compute(record)

	content := ReportService.Assemble(record, valuation, FallbackSwot(record), time.Now())

	for _, amount := range []string{"$2,400,000", "$4,800,000", "$7,500,000", "$4,900,000"} {
		if !strings.Contains(content, amount) {
			t.Errorf("Expected amount %q in report", amount)
		}
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	record := types.FinancialRecord{CompanyName: "Acme", Revenue: 12345}
	valuation := ValuationService.Compute(record)
	swot := FallbackSwot(record)
	generatedAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	first := ReportService.Assemble(record, valuation, swot, generatedAt)
	second := ReportService.Assemble(record, valuation, swot, generatedAt)

	if first != second {
		t.Error("Expected identical output for identical inputs")
	}
}
