package services

import (
	"fmt"
	"strings"
	"time"

	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

type ReportServiceI interface {
	Assemble(record types.FinancialRecord, valuation types.ValuationResult, swot types.SwotAnalysis, generatedAt time.Time) string
}

type reportService struct{}

var ReportService ReportServiceI = &reportService{}

var sectionRule = strings.Repeat("=", 80)

func sectionHeader(title string) string {
	pad := (80 - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s\n%s%s\n%s\n", sectionRule, strings.Repeat(" ", pad), title, sectionRule)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		items = []string{"Not available"}
	}
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "- %s\n", item)
	}
	return sb.String()
}

// Assemble renders the full plain-text valuation report. Section order
// is fixed and every header is always present, even when its content
// is empty, so downstream consumers can rely on section presence.
// Pure function of its inputs plus the generation timestamp.
func (r *reportService) Assemble(record types.FinancialRecord, valuation types.ValuationResult, swot types.SwotAnalysis, generatedAt time.Time) string {
	var sb strings.Builder

	// Title / date header
	sb.WriteString(sectionHeader("BUSINESS VALUATION REPORT"))
	fmt.Fprintf(&sb, "\nCompany: %s\n", helpers.DisplayString(record.CompanyName))
	fmt.Fprintf(&sb, "Industry: %s\n", helpers.DisplayString(record.Industry))
	fmt.Fprintf(&sb, "Report Date: %s\n", generatedAt.Format("January 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&sb, "Valuation Date: %s\n\n", generatedAt.Format("January 2, 2006"))

	// Company overview
	sb.WriteString(sectionHeader("COMPANY OVERVIEW"))
	sb.WriteString("\nFinancial Metrics:\n")
	fmt.Fprintf(&sb, "- Annual Revenue: %s\n", helpers.FormatAmount(record.Revenue))
	fmt.Fprintf(&sb, "- EBITDA: %s\n", helpers.FormatAmount(record.Ebitda))
	fmt.Fprintf(&sb, "- Net Income: %s\n", helpers.FormatAmount(record.NetIncome))
	fmt.Fprintf(&sb, "- Total Assets: %s\n", helpers.FormatAmount(record.TotalAssets))
	fmt.Fprintf(&sb, "- Total Liabilities: %s\n", helpers.FormatAmount(record.TotalLiabilities))
	fmt.Fprintf(&sb, "- Inventory: %s\n", helpers.FormatAmount(record.Inventory))
	fmt.Fprintf(&sb, "- Accounts Receivable: %s\n", helpers.FormatAmount(record.AccountsReceivable))
	fmt.Fprintf(&sb, "- Cash: %s\n", helpers.FormatAmount(record.Cash))
	fmt.Fprintf(&sb, "- Employees: %d\n\n", record.Employees)

	// Valuation summary
	sb.WriteString(sectionHeader("VALUATION RESULTS"))
	fmt.Fprintf(&sb, "\nAsset-Based Valuation: %s\n", helpers.FormatAmount(valuation.AssetBased))
	fmt.Fprintf(&sb, "Income-Based Valuation: %s\n", helpers.FormatAmount(valuation.IncomeBased))
	fmt.Fprintf(&sb, "Market-Based Valuation: %s\n\n", helpers.FormatAmount(valuation.MarketBased))
	sb.WriteString("FINAL VALUATION RANGE:\n")
	fmt.Fprintf(&sb, "- Low Estimate:  %s\n", helpers.FormatAmount(valuation.ValuationRange.Low))
	fmt.Fprintf(&sb, "- Mid Estimate:  %s\n", helpers.FormatAmount(valuation.ValuationRange.Mid))
	fmt.Fprintf(&sb, "- High Estimate: %s\n\n", helpers.FormatAmount(valuation.ValuationRange.High))

	// Executive summary
	sb.WriteString(sectionHeader("EXECUTIVE SUMMARY"))
	fmt.Fprintf(&sb, "\n%s\n\n", ValuationService.ExecutiveSummary(record, valuation))

	// SWOT analysis
	sb.WriteString(sectionHeader("SWOT ANALYSIS"))
	sb.WriteString("\nStrengths:\n" + bulletList(swot.Strengths))
	sb.WriteString("\nWeaknesses:\n" + bulletList(swot.Weaknesses))
	sb.WriteString("\nOpportunities:\n" + bulletList(swot.Opportunities))
	sb.WriteString("\nThreats:\n" + bulletList(swot.Threats))
	sb.WriteString("\nPositioning Guidance:\n" + bulletList(swot.PositioningGuidance))
	sb.WriteString("\nValue Drivers:\n" + bulletList(swot.ValueDrivers))
	sb.WriteString("\nRisk Mitigation:\n" + bulletList(swot.RiskMitigation))
	sb.WriteString("\n")

	// Methodology & assumptions
	sb.WriteString(sectionHeader("METHODOLOGY & ASSUMPTIONS"))
	fmt.Fprintf(&sb, "\nMethodology: %s\n", valuation.Methodology)
	fmt.Fprintf(&sb, "Key Assumptions: %s\n", valuation.Assumptions)
	fmt.Fprintf(&sb, "Industry Standards: Based on %s sector\n\n", helpers.DisplayString(record.Industry))

	// Recommendations
	sb.WriteString(sectionHeader("RECOMMENDATIONS"))
	fmt.Fprintf(&sb, "\n1. Primary Valuation: %s\n", helpers.FormatAmount(valuation.ValuationRange.Mid))
	fmt.Fprintf(&sb, "2. Negotiation Range: %s - %s\n", helpers.FormatAmount(valuation.ValuationRange.Low), helpers.FormatAmount(valuation.ValuationRange.High))
	fmt.Fprintf(&sb, "3. Key Value Drivers: %s\n", strings.Join(orDefault(swot.ValueDrivers), ", "))
	fmt.Fprintf(&sb, "4. Risk Factors: %s\n\n", strings.Join(orDefault(swot.RiskMitigation), ", "))

	// Disclaimer
	sb.WriteString(sectionHeader("DISCLAIMER"))
	sb.WriteString("\nThis valuation report is prepared for informational purposes only and should\n")
	sb.WriteString("not be considered as investment advice. The analysis is based on the\n")
	sb.WriteString("information provided and current market conditions. Professional consultation\n")
	sb.WriteString("is recommended before making any investment decisions.\n\n")
	fmt.Fprintf(&sb, "Report Generated: %s\n", generatedAt.Format("January 2, 2006 at 3:04 PM"))
	sb.WriteString(sectionRule + "\n")

	return sb.String()
}

func orDefault(items []string) []string {
	if len(items) == 0 {
		return []string{"Not specified"}
	}
	return items
}
