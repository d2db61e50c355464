package offline

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"hybrid-command-router/internal/model"
)

// calcKeywords gate the handler: a calculator word must appear together
// with at least one numeric token.
var calcKeywords = []string{
	"plus", "add", "minus", "subtract", "times", "multiply",
	"divide", "divided", "percent", "power", "square root", "square",
	"calculate", "what is",
}

var decimalPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// operation is one resolvable arithmetic operator. Resolution walks the
// list in order and the first substring hit wins, so the order is part of
// the contract.
type operation struct {
	words []string
	apply func(a, b float64) (float64, string)
	unary bool
}

var operations = []operation{
	{words: []string{"plus", "add"}, apply: func(a, b float64) (float64, string) { return a + b, "" }},
	{words: []string{"minus", "subtract"}, apply: func(a, b float64) (float64, string) { return a - b, "" }},
	{words: []string{"times", "multiply"}, apply: func(a, b float64) (float64, string) { return a * b, "" }},
	{words: []string{"divided by", "divide"}, apply: func(a, b float64) (float64, string) {
		if b == 0 {
			return 0, "division by zero"
		}
		return a / b, ""
	}},
	{words: []string{"percent of", "percent"}, apply: func(a, b float64) (float64, string) { return a / 100 * b, "" }},
	{words: []string{"to the power", "power"}, apply: func(a, b float64) (float64, string) { return math.Pow(a, b), "" }},
	{words: []string{"square root", "square"}, unary: true, apply: func(a, _ float64) (float64, string) {
		if a < 0 {
			return 0, "square root of a negative number"
		}
		return math.Sqrt(a), ""
	}},
}

// CalculationHandler evaluates simple spoken arithmetic fully on device.
type CalculationHandler struct{}

func NewCalculationHandler() *CalculationHandler { return &CalculationHandler{} }

func (h *CalculationHandler) Intent() model.Intent { return model.IntentCalculation }

func (h *CalculationHandler) CanHandle(text string) bool {
	lower := strings.ToLower(text)
	if !decimalPattern.MatchString(lower) {
		return false
	}
	for _, kw := range calcKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (h *CalculationHandler) Process(ctx context.Context, text string, cctx model.CommandContext) (model.CandidateResult, error) {
	lower := strings.ToLower(text)

	numbers := parseNumbers(lower)
	if len(numbers) == 0 {
		return model.CandidateResult{}, &ProcessError{Intent: h.Intent(), Text: text, Reason: "insufficient numbers"}
	}

	op, ok := resolveOperation(lower)
	if !ok {
		return model.CandidateResult{}, &ProcessError{Intent: h.Intent(), Text: text, Reason: "no operator recognized"}
	}

	// Exactly two operands when present; one is enough only for the
	// unary square/square-root case.
	var a, b float64
	a = numbers[0]
	if !op.unary {
		if len(numbers) < 2 {
			return model.CandidateResult{}, &ProcessError{Intent: h.Intent(), Text: text, Reason: "insufficient numbers"}
		}
		b = numbers[1]
	}

	value, failure := op.apply(a, b)
	if failure != "" {
		return model.CandidateResult{}, &ProcessError{Intent: h.Intent(), Text: text, Reason: failure}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return model.CandidateResult{}, &ProcessError{Intent: h.Intent(), Text: text, Reason: "result is not a finite number"}
	}

	return model.CandidateResult{
		ResponseText: "The result is " + formatNumber(value, cctx.Device.Locale),
		Confidence:   1.0,
		Cost:         0,
		PrivacyScore: 1.0,
		Source:       model.SourceOnDevice,
	}, nil
}

func parseNumbers(lower string) []float64 {
	var out []float64
	for _, m := range decimalPattern.FindAllString(lower, -1) {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func resolveOperation(lower string) (operation, bool) {
	for _, op := range operations {
		for _, w := range op.words {
			if strings.Contains(lower, w) {
				return op, true
			}
		}
	}
	return operation{}, false
}

// formatNumber renders up to 6 fraction digits with trailing zeros
// trimmed, applying the locale decimal separator.
func formatNumber(v float64, locale string) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if usesCommaDecimal(locale) {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

func usesCommaDecimal(locale string) bool {
	switch {
	case locale == "":
		return false
	case strings.HasPrefix(strings.ToLower(locale), "en"):
		return false
	default:
		return true
	}
}
