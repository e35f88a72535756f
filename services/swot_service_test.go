package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"valuationbackend/types"
)

type fakeInsightProvider struct {
	insight string
	err     error
}

func (f *fakeInsightProvider) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	return f.insight, f.err
}

func assertCompleteSwot(t *testing.T, analysis types.SwotAnalysis) {
	t.Helper()
	if len(analysis.Strengths) == 0 {
		t.Error("Expected non-empty strengths")
	}
	if len(analysis.Weaknesses) == 0 {
		t.Error("Expected non-empty weaknesses")
	}
	if len(analysis.Opportunities) == 0 {
		t.Error("Expected non-empty opportunities")
	}
	if len(analysis.Threats) == 0 {
		t.Error("Expected non-empty threats")
	}
}

func TestGenerate_FallbackOnProviderError(t *testing.T) {
	service := NewSwotService(&fakeInsightProvider{err: errors.New("network unreachable")})

	analysis := service.Generate(context.Background(), types.FinancialRecord{
		CompanyName: "Test Manufacturing Co",
		Industry:    "Manufacturing",
	})

	assertCompleteSwot(t, analysis)
}

func TestGenerate_FallbackOnMalformedInsight(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		`{"strengths": []}`,
		`{"strengths": ["a"], "weaknesses": ["b"], "opportunities": ["c"]}`,
	}

	for _, insight := range cases {
		service := NewSwotService(&fakeInsightProvider{insight: insight})
		analysis := service.Generate(context.Background(), types.FinancialRecord{})
		assertCompleteSwot(t, analysis)
	}
}

func TestGenerate_UsesWellFormedInsight(t *testing.T) {
	insight := "```json\n" + `{
		"strengths": ["Strong patent portfolio"],
		"weaknesses": ["Single supplier dependency"],
		"opportunities": ["Adjacent markets"],
		"threats": ["Price competition"]
	}` + "\n```"
	service := NewSwotService(&fakeInsightProvider{insight: insight})

	analysis := service.Generate(context.Background(), types.FinancialRecord{CompanyName: "Acme"})

	assertCompleteSwot(t, analysis)
	if analysis.Strengths[0] != "Strong patent portfolio" {
		t.Errorf("Expected enriched strengths, got %v", analysis.Strengths)
	}
}

// blockingInsightProvider never answers on its own; it only returns
// once the call context is cancelled.
type blockingInsightProvider struct{}

func (b *blockingInsightProvider) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestGenerate_FallbackOnProviderTimeout(t *testing.T) {
	service := &swotService{provider: &blockingInsightProvider{}, timeout: 50 * time.Millisecond}

	start := time.Now()
	analysis := service.Generate(context.Background(), types.FinancialRecord{
		CompanyName: "Test Manufacturing Co",
		Industry:    "Manufacturing",
	})
	elapsed := time.Since(start)

	assertCompleteSwot(t, analysis)
	if elapsed > 5*time.Second {
		t.Errorf("Generate did not honor the timeout, took %v", elapsed)
	}
}

func TestGenerate_NilProviderUsesFallback(t *testing.T) {
	service := NewSwotService(nil)
	analysis := service.Generate(context.Background(), types.FinancialRecord{})
	assertCompleteSwot(t, analysis)
}

func TestFallbackSwot_InterpolatesCompanyAndIndustry(t *testing.T) {
	analysis := FallbackSwot(types.FinancialRecord{
		CompanyName: "Acme Tools",
		Industry:    "Manufacturing",
	})

	assertCompleteSwot(t, analysis)
	found := false
	for _, s := range analysis.Strengths {
		if strings.Contains(s, "Acme Tools") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected company name in strengths, got %v", analysis.Strengths)
	}
}
