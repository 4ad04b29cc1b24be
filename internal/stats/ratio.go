// internal/stats/ratio.go
package stats

import "strconv"

// Ratio is a proportion that may be undefined when its denominator is zero
// (e.g. GC content of an all-ambiguous sequence). An undefined ratio is a
// reportable result, distinct from a fatal error and from a computed zero.
type Ratio struct {
	Value     float64
	Undefined bool
}

// NewRatio divides num by den, marking the result undefined when den is 0.
func NewRatio(num, den float64) Ratio {
	if den == 0 {
		return Ratio{Undefined: true}
	}
	return Ratio{Value: num / den}
}

// String renders the ratio with 4 decimal places, or "NA" when undefined.
func (r Ratio) String() string {
	if r.Undefined {
		return "NA"
	}
	return strconv.FormatFloat(r.Value, 'f', 4, 64)
}
