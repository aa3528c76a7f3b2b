package domain

import "fmt"

// Severity classifies how consequential a detected divergence is.
// Values are ordered: None < Low < Medium < High < Critical.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"none"`:
		*s = SeverityNone
	case `"low"`:
		*s = SeverityLow
	case `"medium"`:
		*s = SeverityMedium
	case `"high"`:
		*s = SeverityHigh
	case `"critical"`:
		*s = SeverityCritical
	default:
		return fmt.Errorf("unknown severity: %s", data)
	}
	return nil
}
