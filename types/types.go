package types

import "time"

// FinancialRecord is the canonical form of a company's submitted
// financials. Numeric fields default to 0 when absent or unparsable;
// empty strings mean the field was never provided.
type FinancialRecord struct {
	CompanyName        string  `json:"company_name"`
	Industry           string  `json:"industry"`
	Revenue            float64 `json:"revenue"`
	Ebitda             float64 `json:"ebitda"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	Cash               float64 `json:"cash"`
	Inventory          float64 `json:"inventory"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	NetIncome          float64 `json:"net_income"`
	Employees          int     `json:"employees"`
}

// ValuationRange summarizes the three method outputs.
type ValuationRange struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// ValuationResult holds the outputs of the three valuation approaches.
type ValuationResult struct {
	AssetBased     float64        `json:"asset_based"`
	IncomeBased    float64        `json:"income_based"`
	MarketBased    float64        `json:"market_based"`
	ValuationRange ValuationRange `json:"valuation_range"`
	Methodology    string         `json:"methodology"`
	Assumptions    string         `json:"assumptions"`
}

// SwotAnalysis is the four-category qualitative summary plus the
// positioning extras the report renders.
type SwotAnalysis struct {
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	Opportunities       []string `json:"opportunities"`
	Threats             []string `json:"threats"`
	PositioningGuidance []string `json:"positioning_guidance,omitempty"`
	ValueDrivers        []string `json:"value_drivers,omitempty"`
	RiskMitigation      []string `json:"risk_mitigation,omitempty"`
}

// ValidationResult is the outcome of the data sanity pass that runs
// before valuation, SWOT, and report generation.
type ValidationResult struct {
	Status          string   `json:"status"`
	ConfidenceScore int      `json:"confidence_score"`
	ValidationNotes []string `json:"validation_notes"`
}

// Report is a generated text document addressed by filename.
type Report struct {
	Filename  string    `json:"filename"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ValuationEvent is published to kafka/rabbitmq when an upload is
// processed or a report is generated.
type ValuationEvent struct {
	EventType string    `json:"eventType"`
	Company   string    `json:"company"`
	Filename  string    `json:"filename,omitempty"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// IndustryBenchmark carries sector context folded into the SWOT prompt.
type IndustryBenchmark struct {
	Industry         string   `json:"industry"`
	AvgEbitdaMargin  float64  `json:"avg_ebitda_margin"`
	AvgRevenueGrowth float64  `json:"avg_revenue_growth"`
	KeyMetrics       []string `json:"key_metrics"`
	Trends           []string `json:"trends"`
}

// GeminiRequest is the request body for the Gemini generateContent API.
type GeminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig map[string]interface{} `json:"generationConfig"`
}

// APIResponse is the subset of the Gemini response we read.
type APIResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
