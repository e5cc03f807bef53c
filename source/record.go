// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"fmt"
	"strings"

	"github.com/tunegrab-cli/tunegrab/constant"
)

// Kind discriminates the two shapes a media index record can take.
type Kind string

const (
	// KindCollection is an ordered, named grouping of individually fetchable items.
	KindCollection Kind = "collection"
	// KindItem is a single fetchable unit of media.
	KindItem Kind = "item"
)

// Record is one result produced by the media index for a text query.
// The Kind discriminant is set exactly once at creation and never changes.
type Record struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Locator string `json:"locator"`

	// MemberCount is populated for collections only.
	MemberCount int `json:"member_count,omitempty"`
	// ViewCount is populated for items only.
	ViewCount int `json:"view_count,omitempty"`
	// DurationSeconds is populated for items only.
	DurationSeconds int `json:"duration_seconds,omitempty"`
}

func (r *Record) String() string {
	return r.Title
}

// URL returns the record locator normalized to an absolute, directly-fetchable address.
func (r *Record) URL() string {
	return NormalizeLocator(r.Kind, r.Locator)
}

// Metric renders the provider metric relevant to the record kind for display.
func (r *Record) Metric() string {
	if r.Kind == KindCollection {
		return fmt.Sprintf("videos:%d", r.MemberCount)
	}
	return fmt.Sprintf("views:%d", r.ViewCount)
}

// NormalizeLocator composes an absolute provider URL from an opaque locator id.
// Already-absolute locators pass through untouched.
func NormalizeLocator(kind Kind, locator string) string {
	if strings.HasPrefix(locator, "http") {
		return locator
	}
	if kind == KindCollection {
		return fmt.Sprintf(constant.PlaylistURLTemplate, locator)
	}
	return fmt.Sprintf(constant.WatchURLTemplate, locator)
}
