package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"valuationbackend/utils/helpers"
)

type FileServiceI interface {
	ParseDocument(filePath string) map[string]interface{}
}

type fileService struct{}

var FileService FileServiceI = &fileService{}

// metricLabels maps canonical field names to the label variations seen
// in uploaded documents. Order matters: the first match per field wins.
var metricLabels = []struct {
	key      string
	patterns []string
	isText   bool
}{
	{key: "company_name", patterns: []string{`company\s*name`, `business\s*name`, `^company$`}, isText: true},
	{key: "industry", patterns: []string{`^industry`, `^sector`}, isText: true},
	{key: "revenue", patterns: []string{`^(annual\s*|total\s*|net\s*)?revenue`, `^(annual\s*|total\s*)?sales`}},
	{key: "ebitda", patterns: []string{`ebitda`}},
	{key: "total_assets", patterns: []string{`total\s*assets`}},
	{key: "total_liabilities", patterns: []string{`total\s*liabilit`}},
	{key: "cash", patterns: []string{`^cash`}},
	{key: "inventory", patterns: []string{`inventor`}},
	{key: "accounts_receivable", patterns: []string{`accounts?\s*receivable`}},
	{key: "net_income", patterns: []string{`net\s*income`, `net\s*profit`}},
	{key: "employees", patterns: []string{`employees?`, `headcount`}},
}

// ParseDocument extracts a raw field mapping from an uploaded
// document. It is total over its input: unsupported types and parse
// failures yield an empty mapping, never an error, so the caller can
// still produce a (possibly degenerate) valuation.
func (fs *fileService) ParseDocument(filePath string) map[string]interface{} {
	defer sentry.Recover()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xls":
		return extractFromExcel(filePath)
	case ".csv":
		return extractFromCSV(filePath)
	case ".txt":
		return extractFromText(filePath)
	default:
		zap.L().Warn("Unsupported document type, returning empty data", zap.String("filePath", filePath))
		return map[string]interface{}{}
	}
}

func extractFromExcel(filePath string) map[string]interface{} {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		sentry.CaptureException(err)
		zap.L().Error("Error parsing XLSX file", zap.String("filePath", filePath), zap.Error(err))
		return map[string]interface{}{}
	}
	defer f.Close()

	merged := make(map[string]interface{})
	bestSheetData := map[string]interface{}{}
	bestSheetScore := 0

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			sentry.CaptureException(err)
			zap.L().Error("Error reading rows from sheet", zap.String("sheet", sheet), zap.Error(err))
			continue
		}

		sheetData := extractFromRows(rows)
		if len(sheetData) > bestSheetScore {
			bestSheetScore = len(sheetData)
			bestSheetData = sheetData
		}
		for key, value := range sheetData {
			if _, exists := merged[key]; !exists {
				merged[key] = value
			}
		}
	}

	// A sheet that carries most of the metrics is the statement sheet;
	// prefer it over values merged across unrelated tabs.
	if bestSheetScore >= 3 {
		return bestSheetData
	}
	return merged
}

func extractFromCSV(filePath string) map[string]interface{} {
	file, err := os.Open(filePath)
	if err != nil {
		sentry.CaptureException(err)
		zap.L().Error("Error opening CSV file", zap.String("filePath", filePath), zap.Error(err))
		return map[string]interface{}{}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		sentry.CaptureException(err)
		zap.L().Error("Error parsing CSV file", zap.String("filePath", filePath), zap.Error(err))
		return map[string]interface{}{}
	}

	return extractFromRows(rows)
}

func extractFromText(filePath string) map[string]interface{} {
	content, err := os.ReadFile(filePath)
	if err != nil {
		sentry.CaptureException(err)
		zap.L().Error("Error reading text file", zap.String("filePath", filePath), zap.Error(err))
		return map[string]interface{}{}
	}

	var rows [][]string
	for _, line := range strings.Split(string(content), "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			rows = append(rows, []string{parts[0], parts[1]})
		}
	}
	return extractFromRows(rows)
}

// extractFromRows scans label/value rows for known financial metrics.
// The first cell matching a label claims the next non-empty cell on
// the same row as its value.
func extractFromRows(rows [][]string) map[string]interface{} {
	data := make(map[string]interface{})

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		for i, cell := range row[:len(row)-1] {
			label := helpers.NormalizeString(cell)
			if label == "" {
				continue
			}
			for _, metric := range metricLabels {
				if _, exists := data[metric.key]; exists {
					continue
				}
				if !helpers.MatchHeader(label, metric.patterns) {
					continue
				}
				if value := firstNonEmpty(row[i+1:]); value != "" {
					if metric.isText {
						data[metric.key] = strings.TrimSpace(value)
					} else {
						data[metric.key] = value
					}
				}
				break
			}
		}
	}
	return data
}

func firstNonEmpty(cells []string) string {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return cell
		}
	}
	return ""
}
