package tools

import (
	"strconv"
	"strings"
)

// Airtable tables touched by the assistant's tools.
const (
	tableClients = "Clients"
	tablePeople  = "People"
)

// People table fields.
const (
	fieldActive     = "Active"
	fieldName       = "Name"
	fieldFullName   = "Full name"
	fieldEmail      = "Email Address"
	fieldPhone      = "Phone Number"
	fieldClientLink = "Client Link"
)

// Clients table fields.
const (
	fieldClientName       = "Clients"
	fieldClientCode       = "Client code"
	fieldYearEnd          = "Year end"
	fieldCurrentQuarter   = "Current Quarter"
	fieldMonthlyCommitted = "Monthly Committed"
	fieldQuarterlyCommit  = "Quarterly Committed"
	fieldThisMonth        = "This month"
	fieldThisQuarter      = "This Quarter"
	fieldRolloverCredit   = "Rollover Credit"
	fieldRolloverUse      = "Rollover use"
	fieldNextJobNumber    = "Next Job #"
)

// parseCurrency normalizes a currency-like Airtable value into a plain
// number. Values arrive as JSON numbers, currency-formatted strings
// ("$1,234"), or single-element lists (lookup fields); anything else
// is 0.
func parseCurrency(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		return parseCurrencyString(val)
	case []any:
		if len(val) == 0 {
			return 0
		}
		return parseCurrency(val[0])
	default:
		return 0
	}
}

func parseCurrencyString(s string) float64 {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// stringField returns the first non-empty string value among the named
// fields.
func stringField(fields map[string]any, names ...string) string {
	for _, name := range names {
		if v, ok := fields[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// stringArg extracts an optional string argument from tool input.
func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}
