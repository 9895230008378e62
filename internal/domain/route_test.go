package domain

import "testing"

func TestClassifySeverity(t *testing.T) {
	cases := []struct {
		name string
		tags []Congestion
		want Severity
	}{
		{"empty list is free", nil, SeverityFree},
		{"unknown and low are free", []Congestion{CongestionUnknown, CongestionLow}, SeverityFree},
		{"single moderate is light", []Congestion{CongestionModerate}, SeverityLight},
		{"heavy outranks moderate", []Congestion{CongestionModerate, CongestionHeavy, CongestionLow}, SeverityModerate},
		{"severe dominates everything", []Congestion{CongestionLow, CongestionSevere, CongestionModerate}, SeverityHeavy},
		{"severe alone is heavy", []Congestion{CongestionSevere}, SeverityHeavy},
		{"severe after heavy still wins", []Congestion{CongestionHeavy, CongestionHeavy, CongestionSevere}, SeverityHeavy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifySeverity(tc.tags); got != tc.want {
				t.Fatalf("ClassifySeverity(%v) = %q, want %q", tc.tags, got, tc.want)
			}
		})
	}
}

func TestRouteHasTraffic(t *testing.T) {
	if RouteHasTraffic(nil) {
		t.Fatal("empty tag list must not have traffic")
	}
	if RouteHasTraffic([]Congestion{CongestionLow, CongestionUnknown}) {
		t.Fatal("low/unknown tags must not have traffic")
	}
	if !RouteHasTraffic([]Congestion{CongestionModerate}) {
		t.Fatal("a moderate tag must count as traffic")
	}
}

func TestNewRouteCandidateDerivesFlags(t *testing.T) {
	c := NewRouteCandidate(nil, 600, 5000, []Congestion{CongestionModerate})
	if c.Severity != SeverityLight {
		t.Fatalf("severity = %q, want %q", c.Severity, SeverityLight)
	}
	if !c.HasTraffic {
		t.Fatal("expected HasTraffic for a moderate segment")
	}

	free := NewRouteCandidate(nil, 600, 5000, nil)
	if free.Severity != SeverityFree || free.HasTraffic {
		t.Fatalf("absent tags: severity = %q hasTraffic = %v, want free/false", free.Severity, free.HasTraffic)
	}
}

func TestRouteSetSelection(t *testing.T) {
	set := NewRouteSet([]RouteCandidate{
		NewRouteCandidate(nil, 100, 1000, nil),
		NewRouteCandidate(nil, 200, 2000, nil),
	})

	if set.Selected != 0 {
		t.Fatalf("fresh set Selected = %d, want 0", set.Selected)
	}

	if !set.Select(1) {
		t.Fatal("Select(1) should succeed")
	}
	if set.Select(2) || set.Select(-1) {
		t.Fatal("out-of-range Select must be rejected")
	}
	if set.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", set.Selected)
	}

	// Replacing the list wholesale resets the pointer.
	set = NewRouteSet([]RouteCandidate{NewRouteCandidate(nil, 100, 1000, nil)})
	if set.Selected != 0 {
		t.Fatalf("replaced set Selected = %d, want 0", set.Selected)
	}

	if _, ok := NewRouteSet(nil).SelectedCandidate(); ok {
		t.Fatal("empty set must report no selected candidate")
	}
}

func TestHasFreeAlternative(t *testing.T) {
	moderate := NewRouteCandidate(nil, 100, 1000, []Congestion{CongestionModerate})
	heavy := NewRouteCandidate(nil, 100, 1000, []Congestion{CongestionSevere})
	free := NewRouteCandidate(nil, 100, 1000, nil)

	cases := []struct {
		name       string
		candidates []RouteCandidate
		want       bool
	}{
		{"congested first, free second", []RouteCandidate{moderate, free}, true},
		{"all heavy", []RouteCandidate{heavy, heavy, heavy}, false},
		{"free first never advises", []RouteCandidate{free, heavy}, false},
		{"free beyond top two counts", []RouteCandidate{heavy, heavy, free}, true},
		{"single route", []RouteCandidate{moderate}, false},
		{"empty", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := NewRouteSet(tc.candidates)
			if got := set.HasFreeAlternative(); got != tc.want {
				t.Fatalf("HasFreeAlternative() = %v, want %v", got, tc.want)
			}
		})
	}
}
