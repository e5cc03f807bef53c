package catalog

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// separatorWidth is the length of the line dividing the two listing sections.
const separatorWidth = 60

// Discography is the assembled album and track listing of one artist.
type Discography struct {
	Artist string
	Albums []Album
	// Tracks maps a release group id to its ordered track titles.
	Tracks map[string][]string
}

// Filename derives the output file name from the artist name.
func (d *Discography) Filename() string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, d.Artist)
	return fmt.Sprintf("albums_%s.txt", slug)
}

// headline renders one "Artist - Album (Year)" line.
func (d *Discography) headline(album Album) string {
	line := fmt.Sprintf("%s - %s", d.Artist, album.Title)
	if album.Year != "" {
		line += fmt.Sprintf(" (%s)", album.Year)
	}
	return line
}

// Write renders the two-section listing: the plain album index first, then a
// separator, then every album followed by its indented track titles.
func (d *Discography) Write(w io.Writer) error {
	for _, album := range d.Albums {
		if _, err := fmt.Fprintln(w, d.headline(album)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("-", separatorWidth)); err != nil {
		return err
	}

	for _, album := range d.Albums {
		if _, err := fmt.Fprintln(w, d.headline(album)); err != nil {
			return err
		}
		for _, track := range d.Tracks[album.GroupID] {
			if _, err := fmt.Fprintf(w, "    %s\n", track); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
