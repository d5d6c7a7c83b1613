package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	combinedSizeRe = regexp.MustCompile(`(\d+)\s*\+\s*(\d+)`)
	digitRunRe     = regexp.MustCompile(`\d+`)
)

// TeamSize derives the required member count from an event's free-text
// team-size descriptor. Combined sizes ("8 + 2") are checked before bare
// digits so they are not misread as their first number.
func TeamSize(text string) int {
	if m := combinedSizeRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		return a + b
	}
	if strings.Contains(text, "4") {
		return 4
	}
	if strings.Contains(text, "2") {
		return 2
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "solo") || strings.Contains(text, "1") || strings.Contains(lower, "individual") {
		return 1
	}
	return 2
}

// FeeAmount extracts the first run of digits from an event's fee
// descriptor, e.g. "₹1000 per team" -> "1000". Returns "0" when the
// text carries no digits (free events).
func FeeAmount(text string) string {
	if m := digitRunRe.FindString(text); m != "" {
		return m
	}
	return "0"
}
