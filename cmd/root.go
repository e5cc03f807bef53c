// Package cmd implements the command-line interface for tunegrab.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/batch"
	"github.com/tunegrab-cli/tunegrab/constant"
	"github.com/tunegrab-cli/tunegrab/icon"
	"github.com/tunegrab-cli/tunegrab/key"
	"github.com/tunegrab-cli/tunegrab/log"
	provider "github.com/tunegrab-cli/tunegrab/provider/ytdlp"
	"github.com/tunegrab-cli/tunegrab/source"
	"github.com/tunegrab-cli/tunegrab/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Print the application version")

	rootCmd.Flags().StringArrayP("search", "s", nil, "Free-text search term to resolve and fetch (repeatable)")
	rootCmd.Flags().StringP("file", "f", "", "Input file with one locator or search term per line")
	rootCmd.Flags().BoolP("verbose", "v", false, "Display scored candidates and fetch details")

	rootCmd.Flags().StringP("format", "F", "mp4", "Output encoding (mp3 or mp4)")
	lo.Must0(viper.BindPFlag(key.DownloadFormat, rootCmd.Flags().Lookup("format")))

	rootCmd.Flags().StringP("output", "o", "", "Output directory override")
	lo.Must0(viper.BindPFlag(key.DownloadOutput, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().BoolP("thumbnail", "t", false, "Embed the thumbnail into fetched files")
	lo.Must0(viper.BindPFlag(key.DownloadThumbnail, rootCmd.Flags().Lookup("thumbnail")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the tunegrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Tunegrab + " [locator|term]...",
	Short: "Locate albums and videos on YouTube and fetch them as MP3 or MP4",
	Long: `Resolve free-text queries against the YouTube index, rank the candidates,
and fetch every item of the winning playlist (or the single video) with
embedded metadata. Direct locators skip the search entirely.`,
	Example: `  tunegrab "Band - Album (1999) full album"
  tunegrab https://www.youtube.com/playlist?list=PL... --format mp3
  tunegrab --file albums.txt --format mp3 --thumbnail`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		searches := lo.Must(cmd.Flags().GetStringArray("search"))
		file := lo.Must(cmd.Flags().GetString("file"))

		tasks, err := batch.GatherTasks(args, file, searches)
		handleErr(err)

		if len(tasks) == 0 {
			handleErr(cmd.Help())
			return
		}

		format, err := source.ParseFormat(viper.GetString(key.DownloadFormat))
		handleErr(err)

		client := provider.New(&provider.Options{
			SocketTimeout: time.Duration(viper.GetInt(key.SearchTimeoutSeconds)) * time.Second,
		})

		handleErr(batch.Run(cmd.Context(), &batch.Options{
			Index:          client,
			Fetcher:        client,
			Tasks:          tasks,
			Format:         format,
			OutputDir:      viper.GetString(key.DownloadOutput),
			EmbedThumbnail: viper.GetBool(key.DownloadThumbnail),
			Verbose:        lo.Must(cmd.Flags().GetBool("verbose")),
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
