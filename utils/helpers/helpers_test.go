package helpers

import (
	"reflect"
	"testing"
)

func TestMatchHeader_NonMatchingPattern(t *testing.T) {
	cellValue := "Random Header"
	patterns := []string{`total\s*assets`}
	result := MatchHeader(cellValue, patterns)
	if result {
		t.Errorf("Expected false, got %v", result)
	}
}

func TestMatchHeader_MatchingPattern(t *testing.T) {
	cellValue := "  Total Assets ($)"
	patterns := []string{`total\s*assets`}
	result := MatchHeader(cellValue, patterns)
	if !result {
		t.Errorf("Expected true, got %v", result)
	}
}

func TestToFloat_StringWithCommas(t *testing.T) {
	input := "1,234.56"
	expected := 1234.56
	result := ToFloat(input)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestToFloat_CurrencyString(t *testing.T) {
	input := "$5,000,000"
	expected := 5000000.0
	result := ToFloat(input)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestToFloat_NonNumericString(t *testing.T) {
	input := "abc"
	expected := 0.0
	result := ToFloat(input)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestToFloat_NegativeString(t *testing.T) {
	input := "-250000"
	expected := -250000.0
	result := ToFloat(input)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestToFloat_Percentage(t *testing.T) {
	input := "12.5%"
	expected := 0.125
	result := ToFloat(input)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestToFloat_Nil(t *testing.T) {
	result := ToFloat(nil)
	if result != 0.0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestToCount_NegativeClampsToZero(t *testing.T) {
	result := ToCount("-3")
	if result != 0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestNormalizeString(t *testing.T) {
	input := "  HeLLo WoRLd  "
	expected := "hello world"
	result := NormalizeString(input)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestNormalizeRecord_Totality(t *testing.T) {
	raw := map[string]interface{}{
		"company_name": "  Test Manufacturing Co  ",
		"industry":     "Manufacturing",
		"revenue":      "5,000,000",
		"ebitda":       800000.0,
		"total_assets": "not a number",
		"cash":         nil,
		"employees":    "50",
		"unknown":      []int{1, 2, 3},
	}

	record := NormalizeRecord(raw)

	if record.CompanyName != "Test Manufacturing Co" {
		t.Errorf("Expected trimmed company name, got %q", record.CompanyName)
	}
	if record.Revenue != 5000000 {
		t.Errorf("Expected revenue 5000000, got %v", record.Revenue)
	}
	if record.Ebitda != 800000 {
		t.Errorf("Expected ebitda 800000, got %v", record.Ebitda)
	}
	if record.TotalAssets != 0 {
		t.Errorf("Expected unparsable total_assets to be 0, got %v", record.TotalAssets)
	}
	if record.Cash != 0 {
		t.Errorf("Expected absent cash to be 0, got %v", record.Cash)
	}
	if record.Employees != 50 {
		t.Errorf("Expected 50 employees, got %v", record.Employees)
	}
}

func TestNormalizeRecord_EmptyInput(t *testing.T) {
	record := NormalizeRecord(map[string]interface{}{})
	empty := NormalizeRecord(nil)
	if !reflect.DeepEqual(record, empty) {
		t.Errorf("Expected identical zero records, got %+v vs %+v", record, empty)
	}
	if record.Revenue != 0 || record.CompanyName != "" {
		t.Errorf("Expected zero record, got %+v", record)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "$0",
		2400000:   "$2,400,000",
		4900000:   "$4,900,000",
		-1500:     "-$1,500",
		1234567.6: "$1,234,568",
	}
	for input, expected := range cases {
		if result := FormatAmount(input); result != expected {
			t.Errorf("FormatAmount(%v): expected %q, got %q", input, expected, result)
		}
	}
}

func TestDisplayString(t *testing.T) {
	if result := DisplayString("   "); result != "N/A" {
		t.Errorf("Expected N/A, got %q", result)
	}
	if result := DisplayString("Manufacturing"); result != "Manufacturing" {
		t.Errorf("Expected passthrough, got %q", result)
	}
}
