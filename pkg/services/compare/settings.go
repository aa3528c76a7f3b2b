// Package compare implements the quotation/cart comparison engine: severity
// classification, per-category differs and the summary aggregation that
// reduces them to one actionable result.
package compare

// LoyaltyTag is the marketing tag that flags a loyalty-points redemption.
// It is the default watch-listed tag because its absence on one side means
// the associated promotion silently stops applying.
const LoyaltyTag = "usar-pontos-agora"

// Settings contains the configurable thresholds and watch list for one
// comparison run. Read once at startup, passed by value, never mutated.
type Settings struct {
	// PercentageThreshold is the relative delta (in percent) whose 10x
	// multiple marks a divergence critical (default: 0.5).
	PercentageThreshold float64
	// AbsoluteThreshold is the absolute delta in currency units above which a
	// divergence is high; 2x marks it critical (default: 50).
	AbsoluteThreshold float64
	// WatchTags are the marketing tags checked explicitly even when absent
	// from both documents' tag unions.
	WatchTags []string
}

// DefaultSettings returns the default comparison configuration.
func DefaultSettings() Settings {
	return Settings{
		PercentageThreshold: 0.5,
		AbsoluteThreshold:   50,
		WatchTags:           []string{LoyaltyTag},
	}
}
