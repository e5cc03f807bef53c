package download

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/tunegrab-cli/tunegrab/icon"
	"github.com/tunegrab-cli/tunegrab/util"
)

// tracker renders the byte progress of a single fetch as an erasable
// terminal line. One tracker serves exactly one item.
type tracker struct {
	out     io.Writer
	render  bool
	label   string
	erase   func()
	current int64
	total   int64
}

func newTracker(out io.Writer, render bool, ordinal, count int) *tracker {
	return &tracker{
		out:    out,
		render: render,
		label:  fmt.Sprintf("%s %d/%d", icon.Get(icon.Download), ordinal, count),
		erase:  func() {},
	}
}

// update receives incremental byte counts from the fetcher.
func (t *tracker) update(downloaded, total int64) {
	t.current = downloaded
	if total > 0 {
		t.total = total
	}
	if !t.render {
		return
	}

	t.erase()
	t.erase = util.PrintErasable(fmt.Sprintf("%s %s / %s",
		t.label, humanize.Bytes(uint64(t.current)), t.totalLabel()))
}

// finish clears the progress line and prints the terminal state. A successful
// fetch always displays as completed even when the backend under-reported the
// final tick.
func (t *tracker) finish(ok bool) {
	if ok && t.total > 0 {
		t.current = t.total
	}
	if !t.render {
		return
	}

	t.erase()
	status := icon.Get(icon.Success)
	if !ok {
		status = icon.Get(icon.Fail)
	}
	fmt.Fprintf(t.out, "%s %s (%s)\n", t.label, status, humanize.Bytes(uint64(t.current)))
}

func (t *tracker) totalLabel() string {
	if t.total <= 0 {
		return "?"
	}
	return humanize.Bytes(uint64(t.total))
}
