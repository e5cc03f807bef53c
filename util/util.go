// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// FallbackName is returned by SanitizeName when sanitization leaves nothing usable.
const FallbackName = "output"

// invalidFs matches every character that is unsafe in a filesystem entry name.
var invalidFs = regexp.MustCompile(`[\\/*?:"<>|]`)

// trimEdges matches replacement artifacts at the boundaries of a sanitized name.
var trimEdges = regexp.MustCompile(`^_+|_+$`)

// SanitizeName normalizes a string into a safe destination directory or file name.
// Unsafe characters become underscores, surrounding whitespace and trailing dots
// are trimmed, and the result is capped at 100 runes. An empty result yields
// the fixed fallback literal.
func SanitizeName(name string) string {
	name = invalidFs.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ".")
	name = trimEdges.ReplaceAllString(name, "")

	if runes := []rune(name); len(runes) > 100 {
		name = string(runes[:100])
	}

	if name == "" {
		return FallbackName
	}
	return name
}

// SecondsToClock renders a duration in seconds as a clock string, or "?" when unknown.
func SecondsToClock(seconds int) string {
	if seconds <= 0 {
		return "?"
	}

	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// TerminalSize retrieves the current character dimensions of the terminal window.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable prints an ephemeral message to the terminal and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}
