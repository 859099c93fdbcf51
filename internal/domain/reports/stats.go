package reports

import "time"

// CommunitySize estimates distinct reporters from the report total:
// floor(total * 0.3) + 1000. This is a placeholder heuristic with no
// grounding in reporter identity; keep the formula as is.
func CommunitySize(total int) int {
	if total < 0 {
		total = 0
	}
	return total*3/10 + 1000
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
