package domain

import "fmt"

// Record is one parsed input line: a free-text label with the score the
// athlete needs and the score they currently report.
type Record struct {
	Label    string
	Required int
	Current  int
}

// Gap returns Current - Required. Negative means below the target zone,
// positive means above it.
func (r Record) Gap() int {
	return r.Current - r.Required
}

// String renders the record in the input line format.
func (r Record) String() string {
	return fmt.Sprintf("%s %d %d", r.Label, r.Required, r.Current)
}
