// Package flight defines the domain types shared by the store, the report
// layer, and the CLI: the flight record, the delay value with its presence
// flag, and the small label/IATA helpers applied before user input reaches
// the database.
package flight

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DelayThreshold is the departure delay, in minutes, at or above which a
// flight counts as delayed.
const DelayThreshold = 20

// IATALength is the length of an IATA airport code.
const IATALength = 3

// Delay is a departure delay in minutes. The 2015 dataset uses NULL or the
// empty string for missing DEPARTURE_DELAY values; those scan to a Delay
// with Present=false, which displays as zero but never satisfies Delayed.
type Delay struct {
	Minutes int  `json:"minutes"`
	Present bool `json:"present"`
}

// ParseDelay converts a raw DEPARTURE_DELAY column value into a Delay.
// NULL (present=false), empty, and unparsable values all map to an absent
// delay.
func ParseDelay(raw string, present bool) Delay {
	if !present {
		return Delay{}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Delay{}
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return Delay{}
	}
	return Delay{Minutes: minutes, Present: true}
}

// Delayed reports whether the delay is present and at or above DelayThreshold.
func (d Delay) Delayed() bool {
	return d.Present && d.Minutes >= DelayThreshold
}

// Flight is a single row from the flights table joined to its airline.
type Flight struct {
	ID          int64  `json:"flight_id"`
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Origin      string `json:"origin_airport"`
	Destination string `json:"destination_airport"`
	Airline     string `json:"airline"`
	Delay       Delay  `json:"delay"`
}

// NormalizeLabel canonicalizes a user-supplied airline or airport label:
// NFC normalization plus whitespace trimming. Labels are normalized before
// they are matched against the database or folded into a filename, so the
// same visible string always hits the same rows.
func NormalizeLabel(label string) string {
	return strings.TrimSpace(norm.NFC.String(label))
}

// ValidIATA reports whether code is exactly three alphabetic characters.
// This is a caller-side precondition: the store itself performs no IATA
// validation and simply matches zero rows for a malformed code.
func ValidIATA(code string) bool {
	if len(code) != IATALength {
		return false
	}
	for _, r := range code {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
