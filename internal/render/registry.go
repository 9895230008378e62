// Package render tracks what the map surface is currently displaying.
//
// The rendering engine itself is an external collaborator; this registry
// owns the mapping from logical layer and marker identifiers to the handles
// the engine issued, so add, replace and remove are idempotent by
// construction instead of relying on defensive existence checks or scanning
// rendered elements.
package render

import "sync"

// A placed marker: its engine handle plus a kind tag ("waypoint",
// "destination", ...) enabling bulk removal of one class of markers.
type Marker struct {
	Kind   string
	Handle any
}

type Registry struct {
	mu      sync.Mutex
	layers  map[string]any
	markers map[string]Marker
}

func NewRegistry() *Registry {
	return &Registry{
		layers:  make(map[string]any),
		markers: make(map[string]Marker),
	}
}

// PutLayer records the handle for a logical layer ID. When the ID was
// already present the previous handle is returned so the caller can detach
// it from the surface; re-adding is therefore always safe.
func (r *Registry) PutLayer(id string, handle any) (prev any, replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, replaced = r.layers[id]
	r.layers[id] = handle
	return prev, replaced
}

// RemoveLayer forgets a layer and returns its handle for detaching.
// Removing an absent ID is a no-op.
func (r *Registry) RemoveLayer(id string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.layers[id]
	delete(r.layers, id)
	return h, ok
}

func (r *Registry) Layer(id string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.layers[id]
	return h, ok
}

// PutMarker records a marker handle under a logical ID and kind, returning
// any replaced handle.
func (r *Registry) PutMarker(id, kind string, handle any) (prev any, replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, replaced := r.markers[id]
	r.markers[id] = Marker{Kind: kind, Handle: handle}
	return m.Handle, replaced
}

// RemoveMarker forgets one marker and returns its handle for detaching.
func (r *Registry) RemoveMarker(id string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.markers[id]
	delete(r.markers, id)
	return m.Handle, ok
}

// RemoveMarkersOfKind forgets every marker of one kind and returns their
// handles. This replaces scanning rendered elements by class name.
func (r *Registry) RemoveMarkersOfKind(kind string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	var handles []any
	for id, m := range r.markers {
		if m.Kind == kind {
			handles = append(handles, m.Handle)
			delete(r.markers, id)
		}
	}
	return handles
}

// Reset forgets everything, returning all handles for detaching.
func (r *Registry) Reset() []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := make([]any, 0, len(r.layers)+len(r.markers))
	for _, h := range r.layers {
		handles = append(handles, h)
	}
	for _, m := range r.markers {
		handles = append(handles, m.Handle)
	}
	r.layers = make(map[string]any)
	r.markers = make(map[string]Marker)
	return handles
}
