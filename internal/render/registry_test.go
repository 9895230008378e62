package render

import "testing"

func TestRegistryLayerReplace(t *testing.T) {
	r := NewRegistry()

	if _, replaced := r.PutLayer("route-line", "h1"); replaced {
		t.Fatal("first Put must not report a replacement")
	}

	prev, replaced := r.PutLayer("route-line", "h2")
	if !replaced || prev != "h1" {
		t.Fatalf("PutLayer = (%v, %v), want previous handle h1", prev, replaced)
	}

	h, ok := r.Layer("route-line")
	if !ok || h != "h2" {
		t.Fatalf("Layer = (%v, %v), want h2", h, ok)
	}
}

func TestRegistryRemoveLayerIdempotent(t *testing.T) {
	r := NewRegistry()
	r.PutLayer("traffic", "h1")

	if h, ok := r.RemoveLayer("traffic"); !ok || h != "h1" {
		t.Fatalf("RemoveLayer = (%v, %v), want h1", h, ok)
	}
	if _, ok := r.RemoveLayer("traffic"); ok {
		t.Fatal("removing an absent layer must be a no-op")
	}
}

func TestRegistryMarkersByKind(t *testing.T) {
	r := NewRegistry()
	r.PutMarker("wp-1", "waypoint", "m1")
	r.PutMarker("wp-2", "waypoint", "m2")
	r.PutMarker("dest", "destination", "m3")

	handles := r.RemoveMarkersOfKind("waypoint")
	if len(handles) != 2 {
		t.Fatalf("removed %d waypoint markers, want 2", len(handles))
	}

	if _, ok := r.RemoveMarker("wp-1"); ok {
		t.Fatal("waypoint markers must be gone after bulk removal")
	}
	if h, ok := r.RemoveMarker("dest"); !ok || h != "m3" {
		t.Fatalf("destination marker = (%v, %v), want m3 untouched by bulk removal", h, ok)
	}
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	r.PutLayer("route-line", "h1")
	r.PutMarker("dest", "destination", "m1")

	handles := r.Reset()
	if len(handles) != 2 {
		t.Fatalf("Reset returned %d handles, want 2", len(handles))
	}
	if _, ok := r.Layer("route-line"); ok {
		t.Fatal("registry must be empty after Reset")
	}
}
