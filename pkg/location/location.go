// Package location derives a short "City, State" string from a free-text
// address. It is a best-effort heuristic, not an address parser: malformed
// input degrades to a trimmed, partial, or empty result, never an error.
package location

import "strings"

// Extract returns a short descriptive location for the given address.
//
// An address with exactly one comma is assumed to already be a clean
// "City, State" pair and passes through untouched. An address with no
// commas passes through trimmed. Longer addresses in the usual
// "Street, City, State ZIP" shape yield "City, State": the second segment
// is the city, and the leading whitespace-delimited token of the third
// segment is the state (dropping a trailing ZIP code or country).
func Extract(address string) string {
	if strings.Count(address, ",") == 1 {
		return address
	}

	parts := strings.Split(address, ",")
	if len(parts) == 1 {
		// No commas at all; also covers the empty address, which trims
		// down to an empty result.
		return strings.TrimSpace(parts[0])
	}

	// Three or more segments. Two segments cannot reach here: that is the
	// single-comma case handled above.
	city := strings.TrimSpace(parts[1])
	state := ""
	if tokens := strings.Fields(parts[2]); len(tokens) > 0 {
		state = tokens[0]
	}

	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	}
	return state
}
