package icon

// Icon identifies a symbol in the global registry.
type Icon int

const (
	Search Icon = iota
	Playlist
	Video
	Download
	Success
	Fail
	Warning
	Note
)

// icons maps every Icon identifier to its variant representations.
var icons = map[Icon]*iconDef{
	Search:   {emoji: "🔍", nerd: "", plain: "[s]"},
	Playlist: {emoji: "📜", nerd: "蘿", plain: "[p]"},
	Video:    {emoji: "🎞️", nerd: "", plain: "[v]"},
	Download: {emoji: "⬇️", nerd: "", plain: "[d]"},
	Success:  {emoji: "✅", nerd: "", plain: "[ok]"},
	Fail:     {emoji: "❌", nerd: "", plain: "[x]"},
	Warning:  {emoji: "⚠️", nerd: "", plain: "[!]"},
	Note:     {emoji: "🎵", nerd: "", plain: "[n]"},
}
