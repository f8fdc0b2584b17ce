package unlock

import "github.com/MKhiriev/sealed-vitae/models"

// Result is the outcome of an unlock attempt: either Unlocked with a record,
// or NotUnlocked. The zero value is NotUnlocked.
type Result struct {
	record   models.Record
	unlocked bool
}

// Unlocked builds a successful [Result].
func Unlocked(record models.Record) Result {
	return Result{record: record, unlocked: true}
}

// NotUnlocked builds the "no payload matched" [Result].
func NotUnlocked() Result {
	return Result{}
}

// IsUnlocked reports whether a payload was opened.
func (r Result) IsUnlocked() bool {
	return r.unlocked
}

// Record returns the unlocked record and true, or a zero record and false.
func (r Result) Record() (models.Record, bool) {
	return r.record, r.unlocked
}
