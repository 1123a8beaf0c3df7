package utils

import (
	"strings"
	"time"
)

// IST is the fixed display timezone for every email timestamp.
var IST = time.FixedZone("IST", 5*3600+30*60)

// DisplayTime renders a UTC timestamp in the fixed display timezone, in the
// "02-01-2006 05:30:pm" form the email templates expect.
func DisplayTime(t time.Time) string {
	return strings.ToLower(t.In(IST).Format("02-01-2006 03:04:PM"))
}
