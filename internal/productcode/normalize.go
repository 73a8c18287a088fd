// Package productcode maps free-text fuel product descriptions onto the
// canonical codes shared by quotes and invoice lines.
package productcode

import (
	"regexp"
	"strings"
)

// Canonical product codes.
const (
	Regular    = "87"
	MidGrade   = "89"
	Premium    = "91"
	Super      = "93"
	E85        = "e85"
	Diesel     = "diesel"
	DyedDiesel = "dyed-diesel"
	DEF        = "def"
)

type rule struct {
	pattern *regexp.Regexp
	code    string
}

// rules are evaluated in order against the lowercased input; first match wins.
// Specific grades precede the generic "unleaded" alias and diesel variants
// precede plain diesel.
var rules = []rule{
	{regexp.MustCompile(`\bdef\b|\bdiesel exhaust fluid\b`), DEF},
	{regexp.MustCompile(`\b(dyed|off[- ]?road)[\s-]+diesel\b`), DyedDiesel},
	{regexp.MustCompile(`\b(diesel|ulsd)\b`), Diesel},
	{regexp.MustCompile(`\be-?85\b|\bflex[\s-]?fuel\b`), E85},
	{regexp.MustCompile(`\b(93|super|ultra)\b`), Super},
	{regexp.MustCompile(`\b(91|premium|prem)\b`), Premium},
	{regexp.MustCompile(`\b(89|mid[\s-]?grade|plus)\b`), MidGrade},
	{regexp.MustCompile(`\b(87|regular|reg|unleaded)\b`), Regular},
}

// Normalize returns the canonical code for raw, or raw trimmed when no rule
// matches. Empty input yields "".
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lowered := strings.ToLower(trimmed)
	for _, r := range rules {
		if r.pattern.MatchString(lowered) {
			return r.code
		}
	}
	return trimmed
}

// Equal reports whether two raw product names normalize to the same code.
// Unrecognized names compare case-insensitively.
func Equal(a, b string) bool {
	left := Normalize(a)
	if left == "" {
		return false
	}
	return strings.EqualFold(left, Normalize(b))
}

// Codes lists the canonical codes in rule order.
func Codes() []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.code)
	}
	return out
}
