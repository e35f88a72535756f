package services

import (
	"context"
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"go.uber.org/zap"

	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

type ValidationServiceI interface {
	Validate(ctx context.Context, record types.FinancialRecord) types.ValidationResult
}

type validationService struct {
	provider InsightProvider
}

func NewValidationService(provider InsightProvider) ValidationServiceI {
	return &validationService{provider: provider}
}

var ValidationService ValidationServiceI = NewValidationService(GeminiProvider)

// Validate runs a heuristic sanity pass over the record and, when the
// insight provider is available, refines the confidence with one AI
// attempt. It is total: AI failures are absorbed and the heuristic
// result stands.
func (v *validationService) Validate(ctx context.Context, record types.FinancialRecord) types.ValidationResult {
	result := heuristicValidation(record)

	if v.provider == nil {
		return result
	}

	aiCtx, cancel := context.WithTimeout(ctx, aiTimeout())
	defer cancel()

	insight, err := v.provider.GenerateInsight(aiCtx, buildValidationPrompt(record))
	if err != nil {
		zap.L().Debug("AI validation unavailable, keeping heuristic result", zap.Error(err))
		return result
	}

	repaired, err := jsonrepair.RepairJSON(insight)
	if err != nil {
		return result
	}
	var aiResult types.ValidationResult
	if err := json.Unmarshal([]byte(repaired), &aiResult); err != nil {
		return result
	}
	if aiResult.ConfidenceScore > 0 && aiResult.ConfidenceScore <= 100 {
		result.ConfidenceScore = aiResult.ConfidenceScore
		result.ValidationNotes = append(result.ValidationNotes, aiResult.ValidationNotes...)
	}
	return result
}

func heuristicValidation(record types.FinancialRecord) types.ValidationResult {
	notes := []string{}
	confidence := 100

	if record.Revenue <= 0 {
		notes = append(notes, "Zero or negative revenue detected")
		confidence -= 25
	}
	if record.Ebitda < 0 {
		notes = append(notes, "Negative profitability (EBITDA)")
		confidence -= 15
	}
	if record.Revenue > 0 && record.Ebitda > record.Revenue {
		notes = append(notes, "EBITDA exceeds revenue - verify data")
		confidence -= 25
	}
	if record.TotalAssets > 0 && record.TotalLiabilities > record.TotalAssets {
		notes = append(notes, "Liabilities exceed total assets")
		confidence -= 10
	}
	if record.Revenue > 0 && record.Inventory > record.Revenue {
		notes = append(notes, "Inventory exceeds annual revenue - potential overstock")
		confidence -= 10
	}
	if record.Revenue > 0 && record.AccountsReceivable > record.Revenue*0.25 {
		notes = append(notes, "High accounts receivable (>25% of revenue)")
		confidence -= 5
	}
	if record.CompanyName == "" {
		notes = append(notes, "Company name missing")
		confidence -= 5
	}

	if confidence < 0 {
		confidence = 0
	}
	if len(notes) == 0 {
		notes = append(notes, "No data quality issues detected")
	}

	return types.ValidationResult{
		Status:          "validated",
		ConfidenceScore: confidence,
		ValidationNotes: notes,
	}
}

func buildValidationPrompt(record types.FinancialRecord) string {
	return fmt.Sprintf(`You are a financial data auditor. Review these company figures for internal consistency:

Company: %s
Industry: %s
Revenue: %s
EBITDA: %s
Net Income: %s
Total Assets: %s
Total Liabilities: %s
Employees: %d

Return ONLY a JSON object: {"status": "validated", "confidence_score": <0-100>, "validation_notes": ["..."]}`,
		helpers.DisplayString(record.CompanyName),
		helpers.DisplayString(record.Industry),
		helpers.FormatAmount(record.Revenue),
		helpers.FormatAmount(record.Ebitda),
		helpers.FormatAmount(record.NetIncome),
		helpers.FormatAmount(record.TotalAssets),
		helpers.FormatAmount(record.TotalLiabilities),
		record.Employees)
}
