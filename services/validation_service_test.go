package services

import (
	"context"
	"errors"
	"testing"

	"valuationbackend/types"
)

func TestValidate_CleanRecord(t *testing.T) {
	service := NewValidationService(nil)

	result := service.Validate(context.Background(), types.FinancialRecord{
		CompanyName: "Acme",
		Revenue:     1000000,
		Ebitda:      150000,
		TotalAssets: 800000,
	})

	if result.Status != "validated" {
		t.Errorf("Expected validated status, got %q", result.Status)
	}
	if result.ConfidenceScore != 100 {
		t.Errorf("Expected confidence 100, got %d", result.ConfidenceScore)
	}
	if len(result.ValidationNotes) == 0 {
		t.Error("Expected at least one note")
	}
}

func TestValidate_FlagsAnomalies(t *testing.T) {
	service := NewValidationService(nil)

	result := service.Validate(context.Background(), types.FinancialRecord{
		Revenue:          100,
		Ebitda:           500,
		TotalAssets:      100,
		TotalLiabilities: 900,
	})

	if result.ConfidenceScore >= 100 {
		t.Errorf("Expected reduced confidence, got %d", result.ConfidenceScore)
	}
	if len(result.ValidationNotes) < 2 {
		t.Errorf("Expected multiple notes, got %v", result.ValidationNotes)
	}
}

func TestValidate_AbsorbsProviderFailure(t *testing.T) {
	service := NewValidationService(&fakeInsightProvider{err: errors.New("timeout")})

	result := service.Validate(context.Background(), types.FinancialRecord{Revenue: 500000})

	if result.Status != "validated" {
		t.Errorf("Expected heuristic result to stand, got %+v", result)
	}
}

func TestValidate_MergesAIResult(t *testing.T) {
	service := NewValidationService(&fakeInsightProvider{
		insight: `{"status": "validated", "confidence_score": 72, "validation_notes": ["Revenue figure plausible"]}`,
	})

	result := service.Validate(context.Background(), types.FinancialRecord{Revenue: 500000, CompanyName: "Acme"})

	if result.ConfidenceScore != 72 {
		t.Errorf("Expected AI confidence 72, got %d", result.ConfidenceScore)
	}
	found := false
	for _, note := range result.ValidationNotes {
		if note == "Revenue figure plausible" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected AI note merged, got %v", result.ValidationNotes)
	}
}
