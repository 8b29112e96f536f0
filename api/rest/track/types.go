package track

// beacon payload emitted by the presentation layer on a user action
type TrackRequest struct {
	Type  string `json:"type"`
	Slug  string `json:"slug"`
	Event string `json:"event"`
}
