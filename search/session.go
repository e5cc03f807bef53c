package search

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tunegrab-cli/tunegrab/icon"
	"github.com/tunegrab-cli/tunegrab/log"
	"github.com/tunegrab-cli/tunegrab/source"
	"github.com/tunegrab-cli/tunegrab/style"
	"github.com/tunegrab-cli/tunegrab/util"
	"golang.org/x/exp/slices"
)

// Options configures a search session.
type Options struct {
	// Limit bounds the number of records requested per query variant.
	Limit int
	// Timeout bounds a single search call against the index.
	Timeout time.Duration
	// Verbose enables the scored candidate table.
	Verbose bool
	// Spinner enables the liveness indicator while a search call is in flight.
	Spinner bool
	// Out receives user-facing session output. Defaults to os.Stdout.
	Out io.Writer
}

// Session resolves free-text terms into a single best-matching locator.
type Session struct {
	index   source.Index
	options Options
}

// NewSession initializes a session over the given index provider.
func NewSession(index source.Index, options *Options) *Session {
	opts := Options{}
	if options != nil {
		opts = *options
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Session{index: index, options: opts}
}

// candidate pairs a record with its score and original provider position.
type candidate struct {
	record source.Record
	score  int
	index  int
}

// Resolve runs the query variants in order and returns the best eligible match.
// A variant that fails with a transport or timeout error is recoverable; the
// session logs it and advances. When every variant is exhausted without an
// eligible record the session fails with source.NotFoundError.
func (s *Session) Resolve(ctx context.Context, term string) (*source.Match, error) {
	lowered := strings.ToLower(term)
	wantLive := strings.Contains(lowered, "live")
	boostFull := strings.Contains(lowered, "full album")

	variants := []string{term}
	if !boostFull {
		variants = append(variants, term+" full album")
	}

	for i, variant := range variants {
		fmt.Fprintf(s.options.Out, "%s (%d/%d) searching: %s\n",
			icon.Get(icon.Search), i+1, len(variants), variant)

		started := time.Now()
		records, err := s.search(ctx, variant)
		if err != nil {
			log.Warnf("search %q failed: %v", variant, err)
			fmt.Fprintf(s.options.Out, "%s %s\n", icon.Get(icon.Warning), err)
			continue
		}
		fmt.Fprintf(s.options.Out, "    %s in %.1fs\n",
			util.Quantify(len(records), "result", "results"), time.Since(started).Seconds())

		candidates := rank(records, wantLive, boostFull)
		if s.options.Verbose {
			s.printCandidates(candidates)
		}

		// First variant yielding an eligible record terminates the search.
		if len(candidates) > 0 {
			best := candidates[0]
			return &source.Match{
				Locator: best.record.URL(),
				Kind:    best.record.Kind,
				Title:   best.record.Title,
				Score:   best.score,
			}, nil
		}
	}

	return nil, &source.NotFoundError{Term: term}
}

// search issues one bounded index call on a background goroutine so the
// session can render a liveness tick while awaiting the result.
func (s *Session) search(ctx context.Context, query string) ([]source.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.options.Timeout)
	defer cancel()

	type outcome struct {
		records []source.Record
		err     error
	}

	done := make(chan outcome, 1)
	go func() {
		records, err := s.index.Search(ctx, query, s.options.Limit)
		done <- outcome{records: records, err: err}
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	const frames = `|/-\`
	frame := 0
	erase := func() {}

	for {
		select {
		case out := <-done:
			erase()
			return out.records, out.err
		case <-ctx.Done():
			erase()
			return nil, ctx.Err()
		case <-ticker.C:
			if !s.options.Spinner {
				continue
			}
			erase()
			erase = util.PrintErasable(fmt.Sprintf("searching %c", frames[frame%len(frames)]))
			frame++
		}
	}
}

// rank filters ineligible records and orders the remainder by (-score, index).
// Records mentioning live performances are excluded unless the term asked for
// them; the tie-break keeps the earliest-listed record on equal scores.
func rank(records []source.Record, wantLive, boostFull bool) []candidate {
	var candidates []candidate
	for i, record := range records {
		if record.Title == "" {
			continue
		}
		if !wantLive && strings.Contains(strings.ToLower(record.Title), "live") {
			continue
		}
		candidates = append(candidates, candidate{
			record: record,
			score:  Score(record, boostFull),
			index:  i,
		})
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return a.index - b.index
	})

	return candidates
}

func (s *Session) printCandidates(candidates []candidate) {
	for _, c := range candidates {
		duration := "—"
		if c.record.Kind == source.KindItem {
			duration = util.SecondsToClock(c.record.DurationSeconds)
		}
		fmt.Fprintf(s.options.Out, "  [%02d] %s (%s) | %s | dur:%s | score %d | %s\n",
			c.index+1, c.record.Title, c.record.Kind, c.record.Metric(),
			duration, c.score, style.Faint(c.record.URL()))
	}
}
