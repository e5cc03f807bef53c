package catalog

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDiscographyFilename(t *testing.T) {
	Convey("Discography Filename", t, func() {
		Convey("Should slug the artist name", func() {
			d := Discography{Artist: "Falling Up"}
			So(d.Filename(), ShouldEqual, "albums_falling_up.txt")
		})

		Convey("Should replace every non-alphanumeric rune", func() {
			d := Discography{Artist: "AC/DC!"}
			So(d.Filename(), ShouldEqual, "albums_ac_dc_.txt")
		})
	})
}

func TestDiscographyWrite(t *testing.T) {
	Convey("Discography Write", t, func() {
		d := Discography{
			Artist: "Band",
			Albums: []Album{
				{Title: "First", Year: "1999", GroupID: "g1"},
				{Title: "Undated", GroupID: "g2"},
			},
			Tracks: map[string][]string{
				"g1": {"Intro", "Outro"},
			},
		}

		var b strings.Builder
		So(d.Write(&b), ShouldBeNil)
		lines := strings.Split(b.String(), "\n")

		Convey("Should start with the plain album index", func() {
			So(lines[0], ShouldEqual, "Band - First (1999)")
			So(lines[1], ShouldEqual, "Band - Undated")
		})

		Convey("Should separate the sections", func() {
			So(lines[2], ShouldEqual, strings.Repeat("-", separatorWidth))
		})

		Convey("Should indent track titles under each album", func() {
			So(lines[3], ShouldEqual, "Band - First (1999)")
			So(lines[4], ShouldEqual, "    Intro")
			So(lines[5], ShouldEqual, "    Outro")
		})
	})
}
