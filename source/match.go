package source

// Match is the winning candidate of a completed search session.
type Match struct {
	// Locator is normalized to an absolute provider URL.
	Locator string `json:"locator"`
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
}
