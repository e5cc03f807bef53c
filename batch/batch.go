package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/download"
	"github.com/tunegrab-cli/tunegrab/history"
	"github.com/tunegrab-cli/tunegrab/icon"
	"github.com/tunegrab-cli/tunegrab/key"
	"github.com/tunegrab-cli/tunegrab/log"
	"github.com/tunegrab-cli/tunegrab/query"
	"github.com/tunegrab-cli/tunegrab/search"
	"github.com/tunegrab-cli/tunegrab/source"
	"github.com/tunegrab-cli/tunegrab/style"
	"github.com/tunegrab-cli/tunegrab/util"
)

// Options configures a batch run.
type Options struct {
	Index   source.Index
	Fetcher source.Fetcher
	Tasks   []Task

	Format         source.Format
	OutputDir      string
	EmbedThumbnail bool
	Verbose        bool

	// Out receives user-facing output. Defaults to os.Stdout.
	Out io.Writer
}

// Run processes every task in order. A failing task is reported and the run
// continues with the remaining tasks; the returned error is non-nil when at
// least one task failed.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var failed int
	for _, task := range options.Tasks {
		if err := runTask(ctx, options, task); err != nil {
			if ctx.Err() != nil {
				return err
			}
			failed++
			fmt.Fprintf(options.Out, "%s %s\n    %s\n",
				icon.Get(icon.Fail), task.Value, style.Faint(err.Error()))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%s failed", util.Quantify(failed, "task", "tasks"))
	}
	return nil
}

// runTask drives one task through the resolve → expand → fetch pipeline.
func runTask(ctx context.Context, options *Options, task Task) error {
	timeout := time.Duration(viper.GetInt(key.SearchTimeoutSeconds)) * time.Second
	locator := task.Value

	if task.Kind == TaskSearch {
		session := search.NewSession(options.Index, &search.Options{
			Limit:   viper.GetInt(key.SearchLimit),
			Timeout: timeout,
			Verbose: options.Verbose,
			Spinner: true,
			Out:     options.Out,
		})

		if suggestion := query.Suggest(task.Value); options.Verbose && suggestion.IsPresent() {
			fmt.Fprintf(options.Out, "%s previously searched: %s\n",
				icon.Get(icon.Note), style.Faint(suggestion.MustGet()))
		}

		match, err := session.Resolve(ctx, task.Value)
		if err != nil {
			return err
		}

		kindIcon := icon.Get(icon.Video)
		if match.Kind == source.KindCollection {
			kindIcon = icon.Get(icon.Playlist)
		}
		fmt.Fprintf(options.Out, "%s %s selected: %s (score %d)\n",
			icon.Get(icon.Success), kindIcon, match.Title, match.Score)

		if err := query.Remember(task.Value, 1); err != nil {
			log.Warnf("remember query: %v", err)
		}
		locator = match.Locator
	}

	expandCtx, cancel := context.WithTimeout(ctx, timeout)
	listing, err := search.Expand(expandCtx, options.Index, locator)
	cancel()
	if err != nil {
		return err
	}

	if options.Verbose {
		fmt.Fprintf(options.Out, "%s fetching %s\n",
			icon.Get(icon.Download), util.Quantify(len(listing.Items), "file", "files"))
	}

	orchestrator := download.NewOrchestrator(options.Fetcher, &download.Options{
		OutputDir:      options.OutputDir,
		FallbackDir:    viper.GetString(key.DownloadDirFallback),
		Format:         options.Format,
		EmbedThumbnail: options.EmbedThumbnail,
		Progress:       true,
		Out:            options.Out,
	})

	report, err := orchestrator.Run(ctx, listing)
	if err != nil {
		return err
	}

	printReport(options.Out, report)
	saveHistory(task, listing, report)
	return nil
}

// printReport renders the aggregate outcome of one orchestrator run.
func printReport(out io.Writer, report *download.Report) {
	fmt.Fprintf(out, "%s %d/%d fetched\n",
		icon.Get(icon.Success), report.Succeeded, report.Attempted)

	if report.Failed() == 0 {
		return
	}

	fmt.Fprintf(out, "%s %s:\n",
		icon.Get(icon.Warning), util.Quantify(report.Failed(), "failure", "failures"))
	for _, failure := range report.Failures {
		fmt.Fprintf(out, "  %s\n    %s\n", failure.Locator, style.Faint(failure.Reason))
	}
}

// saveHistory records a completed task in the local download registry.
func saveHistory(task Task, listing *source.Listing, report *download.Report) {
	if !viper.GetBool(key.HistorySaveOnDownload) {
		return
	}

	term := ""
	if task.Kind == TaskSearch {
		term = task.Value
	}
	kind := source.KindItem
	if listing.IsCollection {
		kind = source.KindCollection
	}

	if err := history.Save(&history.SavedDownload{
		Term:      term,
		Title:     listing.Title,
		Locator:   task.Value,
		Kind:      string(kind),
		Items:     report.Attempted,
		Succeeded: report.Succeeded,
	}); err != nil {
		log.Warnf("save history: %v", err)
	}
}
