package model

// ClientRef is a client as known to the front end: a short code plus
// display name (e.g. "SKY", "Sky TV"). The caller of the assistant
// supplies the current list; this service derives codes for the
// pass-through endpoints.
type ClientRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
