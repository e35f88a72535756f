package services

import (
	"reflect"
	"strings"
	"testing"

	"valuationbackend/types"
)

func TestCompute_ManufacturingScenario(t *testing.T) {
	record := types.FinancialRecord{
		CompanyName: "Test Manufacturing Co",
		Industry:    "Manufacturing",
		Revenue:     5000000,
		Ebitda:      800000,
		TotalAssets: 3000000,
		Employees:   50,
	}

	result := ValuationService.Compute(record)

	if result.AssetBased != 2400000 {
		t.Errorf("Expected asset_based 2400000, got %v", result.AssetBased)
	}
	if result.IncomeBased != 4800000 {
		t.Errorf("Expected income_based 4800000, got %v", result.IncomeBased)
	}
	if result.MarketBased != 7500000 {
		t.Errorf("Expected market_based 7500000, got %v", result.MarketBased)
	}
	if result.ValuationRange.Low != 2400000 {
		t.Errorf("Expected low 2400000, got %v", result.ValuationRange.Low)
	}
	if result.ValuationRange.Mid != 4900000 {
		t.Errorf("Expected mid 4900000, got %v", result.ValuationRange.Mid)
	}
	if result.ValuationRange.High != 7500000 {
		t.Errorf("Expected high 7500000, got %v", result.ValuationRange.High)
	}
}

func TestCompute_AllZeroRecord(t *testing.T) {
	result := ValuationService.Compute(types.FinancialRecord{})

	if result.AssetBased != 0 || result.IncomeBased != 0 || result.MarketBased != 0 {
		t.Errorf("Expected zero valuations, got %+v", result)
	}
	r := result.ValuationRange
	if r.Low != 0 || r.Mid != 0 || r.High != 0 {
		t.Errorf("Expected zero range, got %+v", r)
	}
}

func TestCompute_RangeOrdering(t *testing.T) {
	records := []types.FinancialRecord{
		{Revenue: 100, Ebitda: 100, TotalAssets: 100},
		{Revenue: 1, Ebitda: 1000000, TotalAssets: 42},
		{Revenue: -500, Ebitda: 200, TotalAssets: 900},
		{Revenue: 0, Ebitda: 0, TotalAssets: 123456},
	}

	for _, record := range records {
		result := ValuationService.Compute(record)
		r := result.ValuationRange
		if r.Low > r.Mid || r.Mid > r.High {
			t.Errorf("Range out of order for %+v: %+v", record, r)
		}

		values := []float64{result.AssetBased, result.IncomeBased, result.MarketBased}
		min, max := values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if r.Low != min || r.High != max {
			t.Errorf("Range bounds mismatch for %+v: got %+v, want low=%v high=%v", record, r, min, max)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	record := types.FinancialRecord{Revenue: 750000, Ebitda: 120000, TotalAssets: 640000}

	first := ValuationService.Compute(record)
	second := ValuationService.Compute(record)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %+v and %+v", first, second)
	}
}

func TestCompute_CustomConfig(t *testing.T) {
	service := NewValuationService(ValuationConfig{
		AssetMultiple:   1.0,
		EbitdaMultiple:  10.0,
		RevenueMultiple: 2.0,
	})

	result := service.Compute(types.FinancialRecord{Revenue: 100, Ebitda: 10, TotalAssets: 50})

	if result.AssetBased != 50 || result.IncomeBased != 100 || result.MarketBased != 200 {
		t.Errorf("Custom multiples not applied: %+v", result)
	}
}

func TestExecutiveSummary_FallbackNames(t *testing.T) {
	record := types.FinancialRecord{Revenue: 5000000}
	result := ValuationService.Compute(record)
	summary := ValuationService.ExecutiveSummary(record, result)

	if summary == "" {
		t.Fatal("Expected non-empty summary")
	}
	for _, want := range []string{"this company", "general business", "$7,500,000"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Expected summary to contain %q, got %q", want, summary)
		}
	}
}
