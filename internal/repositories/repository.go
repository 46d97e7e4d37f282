// Package repositories exposes one repository per entity collection over a
// shared memdb.DB. Every operation is a single critical section, so a mutation
// can never leave partial state behind. Absence is always a sentinel error,
// never a panic.
package repositories

import "time"

const dateLayout = "2006-01-02"

// dateNow returns today's date the way the dashboard stores timestamps:
// a date-only string compared by equality, not by range.
func dateNow() string {
	return time.Now().Format(dateLayout)
}
