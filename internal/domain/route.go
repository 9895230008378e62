package domain

// Congestion is the discrete per-segment traffic category reported by the
// routing service. Segments without data are reported as unknown and count
// as free-flowing.
type Congestion string

const (
	CongestionUnknown  Congestion = "unknown"
	CongestionLow      Congestion = "low"
	CongestionModerate Congestion = "moderate"
	CongestionHeavy    Congestion = "heavy"
	CongestionSevere   Congestion = "severe"
)

// Severity is the route-level summary label derived from segment congestion.
type Severity string

const (
	SeverityFree     Severity = "free"
	SeverityLight    Severity = "light"
	SeverityModerate Severity = "moderate"
	SeverityHeavy    Severity = "heavy"
)

// ClassifySeverity reduces a route's segment tags to one label by strict
// worst-case priority: a single severe segment dominates the whole route.
// It is not an average.
func ClassifySeverity(tags []Congestion) Severity {
	severity := SeverityFree
	for _, t := range tags {
		switch t {
		case CongestionSevere:
			return SeverityHeavy
		case CongestionHeavy:
			severity = SeverityModerate
		case CongestionModerate:
			if severity == SeverityFree {
				severity = SeverityLight
			}
		}
	}
	return severity
}

// RouteHasTraffic reports whether any segment is congested at all
// (moderate or worse).
func RouteHasTraffic(tags []Congestion) bool {
	for _, t := range tags {
		switch t {
		case CongestionModerate, CongestionHeavy, CongestionSevere:
			return true
		}
	}
	return false
}

// A single alternative driving route as returned by the directions service.
// Immutable once constructed; a list of candidates is replaced wholesale on
// each new search.
type RouteCandidate struct {
	Geometry        []Coordinates
	DurationSeconds int
	DistanceMeters  int
	Congestion      []Congestion
	HasTraffic      bool
	Severity        Severity
}

// NewRouteCandidate derives the traffic flags from the segment tags at
// construction time. A nil tag list means the service reported no congestion
// data and the route classifies as free.
func NewRouteCandidate(geometry []Coordinates, durationSeconds, distanceMeters int, tags []Congestion) RouteCandidate {
	return RouteCandidate{
		Geometry:        geometry,
		DurationSeconds: durationSeconds,
		DistanceMeters:  distanceMeters,
		Congestion:      tags,
		HasTraffic:      RouteHasTraffic(tags),
		Severity:        ClassifySeverity(tags),
	}
}

// RouteSet holds the current alternatives plus the user's selection.
// Invariant: Selected is a valid index whenever Candidates is non-empty and
// resets to zero whenever the list is replaced.
type RouteSet struct {
	Candidates []RouteCandidate
	Selected   int
}

func NewRouteSet(candidates []RouteCandidate) RouteSet {
	return RouteSet{Candidates: candidates}
}

// Select moves the selection pointer. Out-of-range indices are rejected so
// the invariant holds without callers re-checking.
func (s *RouteSet) Select(i int) bool {
	if i < 0 || i >= len(s.Candidates) {
		return false
	}
	s.Selected = i
	return true
}

func (s RouteSet) SelectedCandidate() (RouteCandidate, bool) {
	if len(s.Candidates) == 0 {
		return RouteCandidate{}, false
	}
	return s.Candidates[s.Selected], true
}

// HasFreeAlternative reports whether the top-ranked route is congested while
// some other candidate is not. Advisory only: it never changes the selection.
func (s RouteSet) HasFreeAlternative() bool {
	if len(s.Candidates) < 2 || !s.Candidates[0].HasTraffic {
		return false
	}
	for _, c := range s.Candidates[1:] {
		if !c.HasTraffic {
			return true
		}
	}
	return false
}
