package encode

import "strconv"

// InvalidNumberError reports an attempt to emit a non-finite double.
// Values holding NaN or an infinity cannot appear in JSON text; they
// are constructible programmatically and caught here defensively.
type InvalidNumberError struct {
	// Value is the offending double.
	Value float64
}

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	return "invalid number: " + strconv.FormatFloat(e.Value, 'g', -1, 64) + " is not finite"
}
