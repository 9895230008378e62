package domain

import "github.com/google/uuid"

// A user-added intermediate stop considered for multi-stop optimization.
// IDs are assigned at creation time and unique within the session.
type Waypoint struct {
	ID    string
	Name  string
	Coord Coordinates
}

// WaypointList is the user-managed ordered stop collection: appended on add,
// removed by identifier, cleared wholesale.
type WaypointList struct {
	items []Waypoint
}

// Add appends a stop and returns it with its freshly assigned ID.
func (l *WaypointList) Add(name string, coord Coordinates) Waypoint {
	wp := Waypoint{
		ID:    uuid.NewString(),
		Name:  name,
		Coord: coord,
	}
	l.items = append(l.items, wp)
	return wp
}

// Remove deletes the waypoint with the given ID, preserving order.
func (l *WaypointList) Remove(id string) bool {
	for i, wp := range l.items {
		if wp.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *WaypointList) Clear() { l.items = nil }

func (l *WaypointList) Len() int { return len(l.items) }

// Items returns a copy so callers cannot mutate the list out from under the
// planner while an optimization is in flight.
func (l *WaypointList) Items() []Waypoint {
	out := make([]Waypoint, len(l.items))
	copy(out, l.items)
	return out
}
