// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Pipeline - these keys govern output encoding and destination handling.
const (
	DownloadFormat      = "download.format"
	DownloadOutput      = "download.output"
	DownloadThumbnail   = "download.thumbnail"
	DownloadDirFallback = "download.dir_fallback"
)

// Search Session - these keys bound the candidate discovery against the media index.
const (
	SearchLimit                = "search.limit"
	SearchTimeoutSeconds       = "search.timeout_seconds"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Catalog Retrieval - these keys configure the discography listing subcommand.
const (
	CatalogIncludeLive = "catalog.include_live"
)

// History Tracking - these keys configure the persistence of completed downloads.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)
