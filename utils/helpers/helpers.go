package helpers

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"valuationbackend/types"
)

// Helper function to match header titles against label patterns
func MatchHeader(cellValue string, patterns []string) bool {
	normalizedValue := NormalizeString(cellValue)
	for _, pattern := range patterns {
		matched, _ := regexp.MatchString(pattern, normalizedValue)
		if matched {
			return true
		}
	}
	return false
}

// Helper function to normalize strings
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToFloat coerces a raw cell or JSON value to float64. Commas and
// currency symbols are stripped, percentages are divided by 100, and
// anything unparsable becomes 0. Negative values pass through as-is.
func ToFloat(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0.0
		}
		return f
	case string:
		cleanStr := strings.ReplaceAll(v, ",", "")
		cleanStr = strings.ReplaceAll(cleanStr, "$", "")
		cleanStr = strings.TrimSpace(cleanStr)

		if cleanStr == "" {
			return 0.0
		}

		if strings.Contains(cleanStr, "%") {
			cleanStr = strings.ReplaceAll(cleanStr, "%", "")
			f, err := strconv.ParseFloat(cleanStr, 64)
			if err != nil {
				return 0.0
			}
			return f / 100.0
		}

		f, err := strconv.ParseFloat(cleanStr, 64)
		if err != nil {
			zap.L().Debug("Error converting to float64", zap.String("value", v), zap.Error(err))
			return 0.0
		}
		return f
	}
	return 0.0
}

// ToCount coerces a raw value to a non-negative integer count.
func ToCount(value interface{}) int {
	f := ToFloat(value)
	if f < 0 {
		return 0
	}
	return int(f)
}

// ToTrimmedString coerces a raw value to a trimmed string. Non-string
// values and whitespace-only strings become the empty string.
func ToTrimmedString(value interface{}) string {
	if str, ok := value.(string); ok {
		return strings.TrimSpace(str)
	}
	return ""
}

// NormalizeRecord coerces a field name to raw value mapping into a
// canonical FinancialRecord. It is total: missing, malformed, or
// mistyped fields become zero values and no error is ever raised.
func NormalizeRecord(raw map[string]interface{}) types.FinancialRecord {
	return types.FinancialRecord{
		CompanyName:        ToTrimmedString(raw["company_name"]),
		Industry:           ToTrimmedString(raw["industry"]),
		Revenue:            ToFloat(raw["revenue"]),
		Ebitda:             ToFloat(raw["ebitda"]),
		TotalAssets:        ToFloat(raw["total_assets"]),
		TotalLiabilities:   ToFloat(raw["total_liabilities"]),
		Cash:               ToFloat(raw["cash"]),
		Inventory:          ToFloat(raw["inventory"]),
		AccountsReceivable: ToFloat(raw["accounts_receivable"]),
		NetIncome:          ToFloat(raw["net_income"]),
		Employees:          ToCount(raw["employees"]),
	}
}

// FormatAmount renders a currency amount with thousands separators and
// no decimal places, e.g. 2400000 -> "$2,400,000".
func FormatAmount(value float64) string {
	rounded := math.Round(value)
	if rounded < 0 {
		return "-$" + humanize.CommafWithDigits(-rounded, 0)
	}
	return "$" + humanize.CommafWithDigits(rounded, 0)
}

// DisplayString renders an optional string field, substituting "N/A"
// when the field was never provided.
func DisplayString(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
