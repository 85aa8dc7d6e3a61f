package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Australia/Sydney")
	if err != nil {
		panic(err)
	}
}

// the handbook publishes per-year catalogues, so "which year is it"
// must be answered in Sydney time no matter where this runs
func Now() time.Time {
	return time.Now().In(Location)
}

// HandbookYear returns the catalogue year the handbook currently serves
// for a given instant.
func HandbookYear(now time.Time) int {
	return now.In(Location).Year()
}
