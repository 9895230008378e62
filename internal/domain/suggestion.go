package domain

// A single autocomplete candidate returned by a geocoder.
// Suggestions are ephemeral: they live for one autocomplete session and are
// discarded once the user selects one or clears the input.
type PlaceSuggestion struct {
	ID         string
	Name       string
	Center     Coordinates
	PlaceTypes []string
}

// Place-type tags the UI distinguishes when choosing a display icon.
// Anything else falls back to KindPlace.
const (
	KindAddress  = "address"
	KindLocality = "locality"
	KindPOI      = "poi"
	KindPlace    = "place"
)

// Kind reduces the suggestion's place-type tags to a single icon hint.
func (s PlaceSuggestion) Kind() string {
	for _, t := range s.PlaceTypes {
		switch t {
		case KindAddress, KindLocality, KindPOI:
			return t
		}
	}
	return KindPlace
}
