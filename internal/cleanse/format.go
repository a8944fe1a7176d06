package cleanse

import "strconv"

// parseFloat parses a junk-stripped numeric string.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// formatFloat renders a number with the shortest representation that
// round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
