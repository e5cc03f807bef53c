// Package search implements candidate scoring and the query session against a media index.
package search

import (
	"regexp"
	"strings"

	"github.com/tunegrab-cli/tunegrab/source"
)

// Additive score terms. Each bonus is independent so a single toggled
// condition changes the score by exactly its documented delta.
const (
	structuralBonus  = 300
	fullAlbumBoosted = 400
	fullAlbumPlain   = 100
	officialBonus    = 50
	reviewCoverMalus = -100

	// viewsPerPoint converts an item's raw view count into base score points.
	viewsPerPoint = 100_000
)

// structuralPattern matches titles shaped like "<text> - <text> (<year>)".
var structuralPattern = regexp.MustCompile(`.+ - .+\(\d{4}\)`)

// Score computes the deterministic rank of a single index record.
// Collections start from their member count, items from weighted views.
// The boostFull flag amplifies the "full album" bonus when the original
// search term already expressed that intent.
func Score(r source.Record, boostFull bool) int {
	title := strings.ToLower(r.Title)

	var score int
	if r.Kind == source.KindCollection {
		score = r.MemberCount
	} else {
		score = r.ViewCount / viewsPerPoint
	}

	if structuralPattern.MatchString(title) {
		score += structuralBonus
	}

	if strings.Contains(title, "full album") {
		if boostFull {
			score += fullAlbumBoosted
		} else {
			score += fullAlbumPlain
		}
	}

	if strings.Contains(title, "official") {
		score += officialBonus
	}

	if strings.Contains(title, "review") || strings.Contains(title, "cover") {
		score += reviewCoverMalus
	}

	return score
}
