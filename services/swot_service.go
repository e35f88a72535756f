package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"go.uber.org/zap"

	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

type SwotServiceI interface {
	Generate(ctx context.Context, record types.FinancialRecord) types.SwotAnalysis
}

type swotService struct {
	provider InsightProvider
	timeout  time.Duration
}

func NewSwotService(provider InsightProvider) SwotServiceI {
	return &swotService{provider: provider, timeout: aiTimeout()}
}

var SwotService SwotServiceI = NewSwotService(GeminiProvider)

func aiTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("AI_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 20
	}
	return time.Duration(seconds) * time.Second
}

// Generate produces a SWOT analysis for the record. When the insight
// provider is configured and answers with usable JSON within the
// timeout, its analysis is used; any failure on that path degrades to
// the deterministic template. The caller always gets four non-empty
// category lists.
func (s *swotService) Generate(ctx context.Context, record types.FinancialRecord) types.SwotAnalysis {
	if s.provider != nil {
		enrichCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		insight, err := s.provider.GenerateInsight(enrichCtx, BuildSwotPrompt(record))
		if err == nil {
			if analysis, ok := parseSwotInsight(insight); ok {
				return analysis
			}
			zap.L().Warn("Discarding malformed SWOT insight", zap.String("company", record.CompanyName))
		} else {
			zap.L().Warn("SWOT enrichment unavailable, using fallback", zap.Error(err))
		}
	}
	return FallbackSwot(record)
}

// BuildSwotPrompt renders the analysis prompt from the record and the
// best available industry context.
func BuildSwotPrompt(record types.FinancialRecord) string {
	benchmark := BenchmarkService.Context(record.Industry)

	var sb strings.Builder
	sb.WriteString("You are a senior business analyst. Analyze this company for a SWOT analysis:\n\n")
	fmt.Fprintf(&sb, "Company: %s\n", helpers.DisplayString(record.CompanyName))
	fmt.Fprintf(&sb, "Industry: %s\n", helpers.DisplayString(record.Industry))
	fmt.Fprintf(&sb, "Revenue: %s\n", helpers.FormatAmount(record.Revenue))
	fmt.Fprintf(&sb, "EBITDA: %s\n", helpers.FormatAmount(record.Ebitda))
	fmt.Fprintf(&sb, "Net Income: %s\n", helpers.FormatAmount(record.NetIncome))
	fmt.Fprintf(&sb, "Total Assets: %s\n", helpers.FormatAmount(record.TotalAssets))
	fmt.Fprintf(&sb, "Total Liabilities: %s\n", helpers.FormatAmount(record.TotalLiabilities))
	fmt.Fprintf(&sb, "Employees: %d\n", record.Employees)
	fmt.Fprintf(&sb, "\nIndustry context: average EBITDA margin %.0f%%, average revenue growth %.0f%%, key metrics: %s, trends: %s\n",
		benchmark.AvgEbitdaMargin, benchmark.AvgRevenueGrowth,
		strings.Join(benchmark.KeyMetrics, ", "), strings.Join(benchmark.Trends, ", "))
	sb.WriteString(`
Return ONLY a JSON object with these keys, each a list of short strings:
{
  "strengths": [...],
  "weaknesses": [...],
  "opportunities": [...],
  "threats": [...],
  "positioning_guidance": [...],
  "value_drivers": [...],
  "risk_mitigation": [...]
}
`)
	return sb.String()
}

// parseSwotInsight maps free-text insight into the four-list shape.
// The insight is repaired before unmarshalling since model output is
// frequently fenced or mildly malformed. ok is false whenever any of
// the four core lists would come back empty.
func parseSwotInsight(insight string) (types.SwotAnalysis, bool) {
	repaired, err := jsonrepair.RepairJSON(insight)
	if err != nil {
		return types.SwotAnalysis{}, false
	}

	var analysis types.SwotAnalysis
	if err := json.Unmarshal([]byte(repaired), &analysis); err != nil {
		return types.SwotAnalysis{}, false
	}

	if len(analysis.Strengths) == 0 || len(analysis.Weaknesses) == 0 ||
		len(analysis.Opportunities) == 0 || len(analysis.Threats) == 0 {
		return types.SwotAnalysis{}, false
	}
	return analysis, true
}

// FallbackSwot is the deterministic template used whenever enrichment
// is unavailable. It never fails and always fills all four lists.
func FallbackSwot(record types.FinancialRecord) types.SwotAnalysis {
	companyName := record.CompanyName
	if companyName == "" {
		companyName = "The company"
	}
	industry := record.Industry
	if industry == "" {
		industry = "its sector"
	}

	return types.SwotAnalysis{
		Strengths: []string{
			fmt.Sprintf("%s holds an established position in %s", companyName, industry),
			"Experienced management team",
			"Diversified customer base",
			"Quality certifications",
		},
		Weaknesses: []string{
			"Owner dependency",
			"Limited geographic presence",
			"Aging equipment (if applicable)",
		},
		Opportunities: []string{
			fmt.Sprintf("Market expansion within %s", industry),
			"New product lines",
			"Strategic partnerships",
			"Technology upgrades",
		},
		Threats: []string{
			"Economic downturn",
			"Increased competition",
			"Regulatory changes",
			"Key customer loss",
		},
		PositioningGuidance: []string{
			"Highlight recurring revenue streams",
			"Emphasize growth potential",
			"Showcase operational efficiency",
		},
		ValueDrivers: []string{
			"Consistent profitability",
			"Strong customer relationships",
			"Operational scalability",
		},
		RiskMitigation: []string{
			"Diversify customer base",
			"Cross-train employees",
			"Update technology systems",
		},
	}
}
