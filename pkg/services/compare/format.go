package compare

import "fmt"

// formatCurrency renders a major-unit amount for explanation strings.
func formatCurrency(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// formatPct renders a signed percentage with two decimals.
func formatPct(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// formatSignedInt renders an integer delta with an explicit sign.
func formatSignedInt(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
