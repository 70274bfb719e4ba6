package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Santiago")
	if err != nil {
		panic(err)
	}
}

// SIDCO renders listing dates in Chilean local time with no offset
// information, so all date handling is pinned to America/Santiago
// regardless of where the scraper runs.
func Now() time.Time {
	return time.Now().In(Location)
}
