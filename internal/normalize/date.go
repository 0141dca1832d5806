package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts is the ordered list of statement date formats. Order
// matters: day-first numeric formats are tried before two-digit-year
// variants so "20/11/2024" never parses as year 20.
var dateLayouts = []string{
	"2-Jan-2006",      // 20-Nov-2024
	"2-1-2006",        // 20-11-2024
	"2/1/2006",        // 20/11/2024
	"2006-01-02",      // 2024-11-20
	"January 2, 2006", // November 20, 2024
	"Jan 2, 2006",     // Nov 20, 2024
	"2 January 2006",  // 20 November 2024
	"2 Jan 2006",      // 20 Nov 2024
	"2.1.2006",        // 20.11.2024
	"2/1/06",          // 20/11/24
	"2-1-06",          // 20-11-24
	"2-Jan-06",        // 20-Nov-24
}

var numericDateToken = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)

// Date parses a matched date snippet against the known layouts and
// re-emits it as ISO-8601. If no layout parses, the original snippet is
// returned unchanged rather than dropped. Idempotent: ISO input stays ISO.
func Date(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	raw = hSpaceRuns.ReplaceAllString(raw, " ")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}

	// The snippet may carry label debris around a numeric token.
	if token := numericDateToken.FindString(raw); token != "" && token != raw {
		for _, layout := range []string{"2/1/2006", "2-1-2006", "2/1/06", "2-1-06"} {
			if t, err := time.Parse(layout, token); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}

	return raw
}
