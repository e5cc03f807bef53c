package history

import (
	"fmt"
	"time"
)

// SavedDownload represents a single completed task preserved in the user's history.
type SavedDownload struct {
	// Term is the free-text query that resolved the locator, empty for direct locators.
	Term      string    `json:"term,omitempty"`
	Title     string    `json:"title"`
	Locator   string    `json:"locator"`
	Kind      string    `json:"kind"`
	Items     int       `json:"items"`
	Succeeded int       `json:"succeeded"`
	SavedAt   time.Time `json:"saved_at"`
}

func (s *SavedDownload) encode() string {
	return fmt.Sprintf("%s (%s)", s.Title, s.Kind)
}

func (s *SavedDownload) String() string {
	return fmt.Sprintf("%s : %d / %d", s.Title, s.Succeeded, s.Items)
}

func (s *SavedDownload) stamp() {
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}
}
