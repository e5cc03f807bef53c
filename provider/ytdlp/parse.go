package ytdlp

import (
	"encoding/json"
	"errors"

	"github.com/tunegrab-cli/tunegrab/source"
)

// typePlaylist is the discriminant value yt-dlp assigns to collection entries.
const typePlaylist = "playlist"

// flatInfo mirrors the single-JSON dump produced by a flat extraction.
type flatInfo struct {
	Type    string      `json:"_type"`
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Entries []flatEntry `json:"entries"`
}

// flatEntry is one search result or playlist member in a flat dump.
type flatEntry struct {
	Type          string  `json:"_type"`
	ID            string  `json:"id"`
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	Duration      float64 `json:"duration"`
	ViewCount     int64   `json:"view_count"`
	PlaylistCount int     `json:"playlist_count"`
}

// locator returns the best available identifier for the entry.
func (e *flatEntry) locator() string {
	if e.URL != "" {
		return e.URL
	}
	return e.ID
}

// parseFlatInfo decodes the stdout of a flat extraction run.
func parseFlatInfo(stdout string) (*flatInfo, error) {
	if stdout == "" {
		return nil, errors.New("empty extraction output")
	}

	var info flatInfo
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// recordsFromEntries converts flat dump entries into tagged index records,
// dropping unusable entries without a title or locator.
func recordsFromEntries(entries []flatEntry) []source.Record {
	var records []source.Record
	for _, entry := range entries {
		if entry.Title == "" && entry.locator() == "" {
			continue
		}

		record := source.Record{
			Title:   entry.Title,
			Locator: entry.locator(),
		}
		if entry.Type == typePlaylist {
			record.Kind = source.KindCollection
			record.MemberCount = entry.PlaylistCount
		} else {
			record.Kind = source.KindItem
			record.ViewCount = int(entry.ViewCount)
			record.DurationSeconds = int(entry.Duration)
		}

		records = append(records, record)
	}
	return records
}
