package airtable

import (
	"fmt"
	"strings"
)

// Formula helpers for filterByFormula expressions. Values are
// single-quote escaped; field names are wrapped in braces.

// Equals builds {Field} = 'value'.
func Equals(field, value string) string {
	return fmt.Sprintf("{%s} = '%s'", field, escape(value))
}

// NotEquals builds {Field} != 'value'.
func NotEquals(field, value string) string {
	return fmt.Sprintf("{%s} != '%s'", field, escape(value))
}

// IsTrue builds {Field} = TRUE().
func IsTrue(field string) string {
	return fmt.Sprintf("{%s} = TRUE()", field)
}

// Contains builds a case-insensitive substring match on a field.
func Contains(field, substring string) string {
	return fmt.Sprintf("FIND(LOWER('%s'), LOWER({%s})) > 0", escape(substring), field)
}

// And joins expressions with AND(); a single expression passes through.
func And(exprs ...string) string {
	return combine("AND", exprs)
}

// Or joins expressions with OR(); a single expression passes through.
func Or(exprs ...string) string {
	return combine("OR", exprs)
}

func combine(op string, exprs []string) string {
	switch len(exprs) {
	case 0:
		return ""
	case 1:
		return exprs[0]
	default:
		return fmt.Sprintf("%s(%s)", op, strings.Join(exprs, ", "))
	}
}

func escape(value string) string {
	return strings.ReplaceAll(value, "'", "\\'")
}
