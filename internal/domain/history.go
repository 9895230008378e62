package domain

import "time"

// One remembered destination search: the text the user typed plus the place
// it resolved to.
type SearchRecord struct {
	Query      string
	Name       string
	Center     Coordinates
	SearchedAt time.Time
}
