package services

import (
	"fmt"

	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

// ValuationConfig carries the multiples used by the three valuation
// approaches. They are injected at construction so tests can vary them.
type ValuationConfig struct {
	AssetMultiple   float64 // applied to total assets (book value discount)
	EbitdaMultiple  float64 // income approach multiple
	RevenueMultiple float64 // market approach multiple
}

// DefaultValuationConfig returns the standard multiples: 80% of book
// value, 6x EBITDA, 1.5x revenue.
func DefaultValuationConfig() ValuationConfig {
	return ValuationConfig{
		AssetMultiple:   0.8,
		EbitdaMultiple:  6.0,
		RevenueMultiple: 1.5,
	}
}

type ValuationServiceI interface {
	Compute(record types.FinancialRecord) types.ValuationResult
	ExecutiveSummary(record types.FinancialRecord, result types.ValuationResult) string
}

type valuationService struct {
	config ValuationConfig
}

func NewValuationService(config ValuationConfig) ValuationServiceI {
	return &valuationService{config: config}
}

var ValuationService ValuationServiceI = NewValuationService(DefaultValuationConfig())

// Compute maps a canonical financial record to the three valuation
// figures and their range. Pure arithmetic; it never fails, and an
// all-zero record yields an all-zero result.
func (v *valuationService) Compute(record types.FinancialRecord) types.ValuationResult {
	assetBased := record.TotalAssets * v.config.AssetMultiple
	incomeBased := record.Ebitda * v.config.EbitdaMultiple
	marketBased := record.Revenue * v.config.RevenueMultiple

	low := assetBased
	high := assetBased
	for _, value := range []float64{incomeBased, marketBased} {
		if value < low {
			low = value
		}
		if value > high {
			high = value
		}
	}
	mid := (assetBased + incomeBased + marketBased) / 3

	return types.ValuationResult{
		AssetBased:  assetBased,
		IncomeBased: incomeBased,
		MarketBased: marketBased,
		ValuationRange: types.ValuationRange{
			Low:  low,
			Mid:  mid,
			High: high,
		},
		Methodology: "Simplified valuation using asset, income, and market approaches",
		Assumptions: fmt.Sprintf("EBITDA multiple: %gx, Revenue multiple: %gx, Asset discount: %g%%",
			v.config.EbitdaMultiple, v.config.RevenueMultiple, (1-v.config.AssetMultiple)*100),
	}
}

// ExecutiveSummary builds the one-paragraph summary rendered by the
// valuation response and the report.
func (v *valuationService) ExecutiveSummary(record types.FinancialRecord, result types.ValuationResult) string {
	companyName := record.CompanyName
	if companyName == "" {
		companyName = "this company"
	}
	industry := record.Industry
	if industry == "" {
		industry = "general business"
	}

	return fmt.Sprintf(
		"Based on the provided financial data, %s (%s sector, annual revenue %s) has an estimated value range of %s to %s, with a mid-point estimate of %s. "+
			"The valuation considers an asset-based approach (%s), an income-based approach (%s), and a market-based approach (%s).",
		companyName,
		industry,
		helpers.FormatAmount(record.Revenue),
		helpers.FormatAmount(result.ValuationRange.Low),
		helpers.FormatAmount(result.ValuationRange.High),
		helpers.FormatAmount(result.ValuationRange.Mid),
		helpers.FormatAmount(result.AssetBased),
		helpers.FormatAmount(result.IncomeBased),
		helpers.FormatAmount(result.MarketBased),
	)
}
