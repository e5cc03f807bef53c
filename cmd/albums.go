package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/catalog"
	"github.com/tunegrab-cli/tunegrab/filesystem"
	"github.com/tunegrab-cli/tunegrab/icon"
	"github.com/tunegrab-cli/tunegrab/key"
	"github.com/tunegrab-cli/tunegrab/log"
	"github.com/tunegrab-cli/tunegrab/style"
	"github.com/tunegrab-cli/tunegrab/util"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(albumsCmd)

	albumsCmd.Flags().BoolP("live", "l", false, "Include live albums in the listing")
	lo.Must0(viper.BindPFlag(key.CatalogIncludeLive, albumsCmd.Flags().Lookup("live")))

	albumsCmd.Flags().String("mbid", "", "MusicBrainz artist id, skips the name lookup")
	albumsCmd.Flags().StringP("output", "o", "", "Output file path override")
	albumsCmd.Flags().Bool("tracks", true, "Fetch the track listing of every album")
}

var albumsCmd = &cobra.Command{
	Use:   "albums <artist>",
	Short: "Write an artist's album and track listing to a text file",
	Long: `Look up an artist on MusicBrainz and write their album discography,
with per-album track listings, into a plain text file. Each album line
doubles as a ready-made search term for the main command.`,
	Example: `  tunegrab albums "Pink Floyd"
  tunegrab albums "Falling Up" --live
  tunegrab albums --mbid 83d91898-7763-47d7-b03b-b92132375c47`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mbid := lo.Must(cmd.Flags().GetString("mbid"))
		if len(args) == 0 && mbid == "" {
			handleErr(errors.New("an artist name or --mbid is required"))
		}

		client := catalog.NewClient()
		ctx := cmd.Context()

		artist := catalog.Artist{ID: mbid}
		if len(args) > 0 {
			artist.Name = args[0]
		}

		if artist.ID == "" {
			found, err := resolveArtist(cmd, client, artist.Name)
			handleErr(err)
			artist = found
			fmt.Printf("%s %s\n", icon.Get(icon.Search), style.Bold(artist.Name))
		}

		albums, err := client.Albums(ctx, artist.ID, viper.GetBool(key.CatalogIncludeLive))
		handleErr(err)

		if len(albums) == 0 {
			fmt.Printf("%s no albums found\n", icon.Get(icon.Warning))
			return
		}

		discography := catalog.Discography{
			Artist: artist.Name,
			Albums: albums,
			Tracks: make(map[string][]string),
		}

		if lo.Must(cmd.Flags().GetBool("tracks")) {
			for i, album := range albums {
				tracks, err := client.Tracks(ctx, album.GroupID)
				if err != nil {
					log.Warnf("track listing for %q failed: %v", album.Title, err)
					continue
				}
				discography.Tracks[album.GroupID] = tracks
				fmt.Printf("%s %d/%d %s (%s)\n",
					icon.Get(icon.Note),
					i+1, len(albums),
					album.Title,
					util.Quantify(len(tracks), "track", "tracks"))
			}
		}

		path := lo.Must(cmd.Flags().GetString("output"))
		if path == "" {
			path = discography.Filename()
		}

		file, err := filesystem.API().Create(path)
		handleErr(err)
		defer file.Close()

		handleErr(discography.Write(file))

		fmt.Printf("%s wrote %s to %s\n",
			icon.Get(icon.Success),
			util.Quantify(len(albums), "album", "albums"),
			style.Bold(path))
	},
}

// resolveArtist turns an artist name into a single catalog candidate. When the
// lookup is ambiguous and a terminal is attached, the user picks interactively;
// otherwise the closest match wins.
func resolveArtist(cmd *cobra.Command, client *catalog.Client, name string) (catalog.Artist, error) {
	candidates, err := client.SearchArtists(cmd.Context(), name)
	if err != nil {
		return catalog.Artist{}, err
	}

	best, ok := catalog.BestArtist(name, candidates).Get()
	if !ok {
		return catalog.Artist{}, fmt.Errorf("artist %q not found", name)
	}

	if strings.EqualFold(best.Name, name) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return best, nil
	}

	options := lo.Map(candidates, func(a catalog.Artist, _ int) string {
		return a.Name
	})

	var index int
	prompt := &survey.Select{
		Message: "No exact match, which artist did you mean?",
		Options: options,
		Default: best.Name,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return catalog.Artist{}, err
	}

	return candidates[index], nil
}
