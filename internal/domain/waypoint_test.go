package domain

import "testing"

func TestWaypointListAddRemove(t *testing.T) {
	var list WaypointList

	a := list.Add("Library", Coordinates{Lon: -112.07, Lat: 33.45})
	b := list.Add("Museum", Coordinates{Lon: -112.06, Lat: 33.46})

	if a.ID == "" || b.ID == "" {
		t.Fatal("waypoints must get IDs at creation")
	}
	if a.ID == b.ID {
		t.Fatal("waypoint IDs must be unique")
	}
	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}

	if !list.Remove(a.ID) {
		t.Fatal("Remove(existing) should succeed")
	}
	if list.Remove(a.ID) {
		t.Fatal("Remove(absent) should report false")
	}

	items := list.Items()
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("unexpected items after remove: %+v", items)
	}

	list.Clear()
	if list.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", list.Len())
	}
}

func TestWaypointListItemsIsACopy(t *testing.T) {
	var list WaypointList
	list.Add("Library", Coordinates{})

	items := list.Items()
	items[0].Name = "mutated"

	if got := list.Items()[0].Name; got != "Library" {
		t.Fatalf("list mutated through Items(): %q", got)
	}
}
