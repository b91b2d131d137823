package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MGhunch/dot-hub-api/internal/agent"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// Period modes accepted by the spend summary tool, besides the four
// explicit calendar-quarter names.
const (
	PeriodThisMonth   = "this_month"
	PeriodThisQuarter = "this_quarter"
	PeriodLastQuarter = "last_quarter"
)

// quarterOfMonth maps a calendar month to its quarter bucket.
var quarterOfMonth = map[time.Month]string{
	time.January: "JAN-MAR", time.February: "JAN-MAR", time.March: "JAN-MAR",
	time.April: "APR-JUN", time.May: "APR-JUN", time.June: "APR-JUN",
	time.July: "JUL-SEP", time.August: "JUL-SEP", time.September: "JUL-SEP",
	time.October: "OCT-DEC", time.November: "OCT-DEC", time.December: "OCT-DEC",
}

// previousQuarter is the fixed cyclic previous-quarter table.
var previousQuarter = map[string]string{
	"JAN-MAR": "OCT-DEC",
	"APR-JUN": "JAN-MAR",
	"JUL-SEP": "APR-JUN",
	"OCT-DEC": "JUL-SEP",
}

// GetSpendSummaryTool computes budget/spent/remaining for a client
// over a month or quarter period.
type GetSpendSummaryTool struct {
	store airtable.IClient
	now   func() time.Time
}

// NewGetSpendSummaryTool creates a new spend summary tool.
func NewGetSpendSummaryTool(store airtable.IClient) *GetSpendSummaryTool {
	return &GetSpendSummaryTool{store: store, now: time.Now}
}

var _ agent.Tool = (*GetSpendSummaryTool)(nil)

// WithClock overrides the time source. Used in tests.
func (t *GetSpendSummaryTool) WithClock(now func() time.Time) *GetSpendSummaryTool {
	t.now = now
	return t
}

func (t *GetSpendSummaryTool) Name() string {
	return "get_spend_summary"
}

func (t *GetSpendSummaryTool) Description() string {
	return "Get spend/budget summary for a client. Use this when asked about how much has been spent, budget remaining, or financial tracking."
}

func (t *GetSpendSummaryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"client_code": map[string]interface{}{
				"type":        "string",
				"description": "The client code (e.g., 'SKY', 'TOW', 'ONE')",
			},
			"period": map[string]interface{}{
				"type":        "string",
				"description": "Time period: 'this_month', 'this_quarter', or 'last_quarter'",
			},
		},
		"required": []string{"client_code"},
	}
}

func (t *GetSpendSummaryTool) Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	clientCode := stringArg(args, "client_code")
	if clientCode == "" {
		return nil, fmt.Errorf("client_code is required")
	}
	period := stringArg(args, "period")
	if period == "" {
		period = PeriodThisMonth
	}

	page, err := t.store.List(ctx, tableClients, airtable.SelectOptions{
		FilterByFormula: airtable.Equals(fieldClientCode, clientCode),
		MaxRecords:      1,
	}, "")
	if err != nil {
		return nil, fmt.Errorf("client lookup failed: %w", err)
	}
	if len(page.Records) == 0 {
		return nil, fmt.Errorf("client %s not found", clientCode)
	}

	fields := page.Records[0].Fields
	clientName := stringField(fields, fieldClientName)
	monthly := parseCurrency(fields[fieldMonthlyCommitted])
	rollover := parseCurrency(fields[fieldRolloverCredit])
	rolloverUse := stringField(fields, fieldRolloverUse)
	currentQuarterLabel := stringField(fields, fieldCurrentQuarter)

	now := t.now()

	if period == PeriodThisMonth {
		spent := parseCurrency(fields[fieldThisMonth])
		return map[string]interface{}{
			"client":      clientName,
			"clientCode":  clientCode,
			"period":      now.Format("January"),
			"budget":      monthly,
			"spent":       spent,
			"remaining":   monthly - spent,
			"percentUsed": percentUsed(spent, monthly),
		}, nil
	}

	currentCalQuarter := quarterOfMonth[now.Month()]

	var quarterKey, periodLabel string
	switch period {
	case PeriodThisQuarter:
		quarterKey = currentCalQuarter
		periodLabel = currentQuarterLabel
	case PeriodLastQuarter:
		quarterKey = previousQuarter[currentCalQuarter]
		periodLabel = previousQuarterLabel(currentQuarterLabel)
	case "JAN-MAR", "APR-JUN", "JUL-SEP", "OCT-DEC":
		quarterKey = period
		periodLabel = period
	default:
		quarterKey = currentCalQuarter
		periodLabel = currentQuarterLabel
	}

	spent := parseCurrency(fields[quarterKey])
	budget := monthly * 3

	rolloverApplied := rolloverUse == quarterKey && rollover > 0
	if rolloverApplied {
		budget += rollover
	}
	rolloverAmount := 0.0
	if rolloverUse == quarterKey {
		rolloverAmount = rollover
	}

	return map[string]interface{}{
		"client":          clientName,
		"clientCode":      clientCode,
		"period":          periodLabel,
		"budget":          budget,
		"spent":           spent,
		"remaining":       budget - spent,
		"percentUsed":     percentUsed(spent, budget),
		"rolloverApplied": rolloverApplied,
		"rolloverAmount":  rolloverAmount,
	}, nil
}

// percentUsed is round(spent/budget*100), or 0 when there is no budget.
func percentUsed(spent, budget float64) int {
	if budget <= 0 {
		return 0
	}
	return int(math.Round(spent / budget * 100))
}

// previousQuarterLabel turns "Q3" into "Q2" ("Q1" wraps to "Q4").
func previousQuarterLabel(current string) string {
	n, err := strconv.Atoi(strings.TrimPrefix(current, "Q"))
	if err != nil || n < 1 || n > 4 {
		n = 1
	}
	if n > 1 {
		n--
	} else {
		n = 4
	}
	return fmt.Sprintf("Q%d", n)
}
