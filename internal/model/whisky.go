package model

// Whisky is the single entity served by the API. ID is nil until the store
// assigns one on first save; after that it never changes.
type Whisky struct {
	ID     *int64 `json:"id"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
}

// NewWhisky returns an unsaved whisky with the given attributes.
func NewWhisky(name, origin string) *Whisky {
	return &Whisky{Name: name, Origin: origin}
}
