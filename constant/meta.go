// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Tunegrab is the canonical application identifier used for filesystem paths and CLI branding.
	Tunegrab = "tunegrab"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies the application on HTTP requests to external catalog services.
	// MusicBrainz requires a contactable agent string.
	UserAgent = Tunegrab + "/" + Version + " (+https://github.com/tunegrab-cli/tunegrab)"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Provider URL templates used to normalize opaque locators into absolute addresses.
const (
	WatchURLTemplate    = "https://www.youtube.com/watch?v=%s"
	PlaylistURLTemplate = "https://www.youtube.com/playlist?list=%s"
)
