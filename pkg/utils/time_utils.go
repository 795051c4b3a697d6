package utils

import (
	"fmt"
	"time"
)

// Warsaw time (CET/CEST)
var plLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Warsaw"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

var plMonths = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

// FormatSummaryDatePL renders a timestamp the way the summary email shows
// it, e.g. "14 maja 2025, 16:05".
func FormatSummaryDatePL(t time.Time) string {
	t = t.In(plLoc)
	return fmt.Sprintf("%d %s %d, %02d:%02d",
		t.Day(), plMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
