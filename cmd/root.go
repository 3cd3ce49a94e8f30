package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torrentsmith/torrentsmith/internal/buildinfo"
)

const banner = `  _                            _               _ _   _
 | |_ ___  _ __ _ __ ___ _ __ | |_ ___ _ __ ___(_) |_| |__
 | __/ _ \| '__| '__/ _ \ '_ \| __/ __| '_ ' _ \ | __| '_ \
 | || (_) | |  | | |  __/ | | | |_\__ \ | | | | | | |_| | | |
  \__\___/|_|  |_|  \___|_| |_|\__|___/_| |_| |_|_|\__|_| |_|`

var rootCmd = &cobra.Command{
	Use:   "torrentsmith",
	Short: "Create BitTorrent v1 metainfo files",
	Long:  banner + "\n\ntorrentsmith builds single- and multi-file .torrent metainfo documents.",
}

var torrentCmd = &cobra.Command{
	Use:   "torrent",
	Short: "Work with torrent metainfo files",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildinfo.CreatedBy())
	},
	DisableFlagsInUseLine: true,
}

// SetVersion overrides the build-time version string (set via -ldflags).
func SetVersion(v string) {
	buildinfo.Version = v
}

func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	torrentCmd.AddCommand(createCmd)
	rootCmd.AddCommand(torrentCmd, versionCmd)

	rootCmd.SetUsageTemplate(`Usage:
  {{.CommandPath}} [command]

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`)

	return rootCmd.Execute()
}
