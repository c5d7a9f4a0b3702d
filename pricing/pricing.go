// Package pricing maps a destination region to a per-KG courier rate.
package pricing

import "strings"

// Per-KG courier rates by destination.
const (
	RateAndhra    = 80.0
	RateTelangana = 100.0
	RateOther     = 150.0
)

// CourierRatePerKG returns the per-KG courier rate for a free-text state
// name. The match is an unanchored, case-insensitive substring check, so
// "ap"/"ts" can false-positive on unrelated names ("Japan" matches "ap").
// That quirk is load-bearing for existing clients and is kept as-is.
func CourierRatePerKG(state string) float64 {
	s := strings.ToLower(state)
	switch {
	case strings.Contains(s, "andhra") || strings.Contains(s, "ap"):
		return RateAndhra
	case strings.Contains(s, "telangana") || strings.Contains(s, "ts"):
		return RateTelangana
	default:
		return RateOther
	}
}
