package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/torrentsmith/torrentsmith/internal/byteunit"
	"github.com/torrentsmith/torrentsmith/internal/config"
	"github.com/torrentsmith/torrentsmith/internal/display"
	"github.com/torrentsmith/torrentsmith/internal/hostport"
	"github.com/torrentsmith/torrentsmith/internal/lint"
	"github.com/torrentsmith/torrentsmith/internal/magnet"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
	"github.com/torrentsmith/torrentsmith/internal/pipeline"
	"github.com/torrentsmith/torrentsmith/internal/walker"
)

var (
	flagInputPath    string
	flagAnnounce     string
	flagTiers        []string
	flagComment      string
	flagNodes        []string
	flagDryRun       bool
	flagFollowLinks  bool
	flagForce        bool
	flagGlobs        []string
	flagIncludeHide  bool
	flagIncludeJunk  bool
	flagLink         bool
	flagMD5          bool
	flagName         string
	flagNoCreatedBy  bool
	flagNoCreateDate bool
	flagOpen         bool
	flagOrder        string
	flagOutput       string
	flagPeers        []string
	flagPieceLength  string
	flagPrivate      bool
	flagShow         bool
	flagSource       string
	flagAllow        []string
	flagEntropy      bool
	flagPresetName   string
	flagPresetFile   string
	flagWebSeeds     []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a .torrent metainfo file from a file or directory",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().SortFlags = false

	createCmd.Flags().StringVarP(&flagInputPath, "input", "i", "", "root content path (required)")
	createCmd.Flags().StringVarP(&flagAnnounce, "announce", "a", "", "primary announce URL")
	createCmd.Flags().StringArrayVarP(&flagTiers, "announce-tier", "t", nil, "comma-separated announce tier (repeatable)")
	createCmd.Flags().StringVarP(&flagComment, "comment", "c", "", "comment")
	createCmd.Flags().StringArrayVar(&flagNodes, "node", nil, "DHT bootstrap node host:port (repeatable)")
	createCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "skip writing the output file")
	createCmd.Flags().BoolVarP(&flagFollowLinks, "follow-symlinks", "F", false, "follow symlinks while walking")
	createCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite an existing output file")
	createCmd.Flags().StringArrayVarP(&flagGlobs, "glob", "g", nil, "selection glob, !-prefixed for exclude (repeatable)")
	createCmd.Flags().BoolVarP(&flagIncludeHide, "include-hidden", "h", false, "include hidden files")
	createCmd.Flags().BoolVarP(&flagIncludeJunk, "include-junk", "j", false, "include OS junk files (Thumbs.db, Desktop.ini, .DS_Store)")
	createCmd.Flags().BoolVar(&flagLink, "link", false, "print a magnet URI on stdout instead of showing creation output")
	createCmd.Flags().BoolVarP(&flagMD5, "md5", "M", false, "compute a per-file MD5 digest")
	createCmd.Flags().StringVarP(&flagName, "name", "N", "", "override the torrent name")
	createCmd.Flags().BoolVar(&flagNoCreatedBy, "no-created-by", false, "omit the created-by field")
	createCmd.Flags().BoolVar(&flagNoCreateDate, "no-creation-date", false, "omit the creation-date field")
	createCmd.Flags().BoolVarP(&flagOpen, "open", "O", false, "open the resulting file with the host opener")
	createCmd.Flags().StringVar(&flagOrder, "order", "alphabetical-asc", "file order: alphabetical-asc, alphabetical-desc, size-asc, size-desc")
	createCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path, or - for stdout (default: $INPUT.torrent)")
	createCmd.Flags().StringArrayVar(&flagPeers, "peer", nil, "peer host:port to add to the magnet link (repeatable, requires --link)")
	createCmd.Flags().StringVarP(&flagPieceLength, "piece-length", "p", "", "piece length in bytes, with SI/IEC suffixes (default: automatic)")
	createCmd.Flags().BoolVarP(&flagPrivate, "private", "P", false, "set the private flag")
	createCmd.Flags().BoolVarP(&flagShow, "show", "S", false, "print a summary after creation")
	createCmd.Flags().StringVarP(&flagSource, "source", "s", "", "source string")
	createCmd.Flags().StringArrayVarP(&flagAllow, "allow", "A", nil, "allow a lint (repeatable)")
	createCmd.Flags().BoolVar(&flagEntropy, "entropy", false, "write a random entropy field to perturb the info-hash")
	createCmd.Flags().StringVar(&flagPresetName, "preset", "", "apply a named preset from the preset file")
	createCmd.Flags().StringVar(&flagPresetFile, "preset-file", "", "path to a presets.yaml file")
	createCmd.Flags().StringArrayVarP(&flagWebSeeds, "web-seed", "w", nil, "web seed URL (BEP 19, repeatable)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if flagInputPath == "" {
		return fmt.Errorf("-i/--input is required")
	}
	if len(flagPeers) > 0 && !flagLink {
		return fmt.Errorf("--peer requires --link")
	}

	order, ok := walker.ParseFileOrder(flagOrder)
	if !ok {
		return fmt.Errorf("invalid --order value %q", flagOrder)
	}

	allow := lint.NewSet()
	for _, name := range flagAllow {
		k, err := lint.Parse(name)
		if err != nil {
			return err
		}
		allow.Allow(k)
	}

	opts, err := applyPreset(pipeline.CreateOptions{
		Path:           flagInputPath,
		Name:           flagName,
		Announce:       flagAnnounce,
		Comment:        flagComment,
		Private:        flagPrivate,
		Source:         flagSource,
		NoCreatedBy:    flagNoCreatedBy,
		NoCreationDate: flagNoCreateDate,
		Entropy:        flagEntropy,
		MD5:            flagMD5,
		FollowSymlinks: flagFollowLinks,
		IncludeHidden:  flagIncludeHide,
		IncludeJunk:    flagIncludeJunk,
		Order:          order,
		Globs:          flagGlobs,
		Allow:          allow,
		WebSeeds:       flagWebSeeds,
	})
	if err != nil {
		return err
	}

	for _, tier := range flagTiers {
		opts.AnnounceList = append(opts.AnnounceList, strings.Split(tier, ","))
	}

	for _, n := range flagNodes {
		hp, err := hostport.Parse(n)
		if err != nil {
			return err
		}
		opts.Nodes = append(opts.Nodes, hp)
	}

	if flagPieceLength != "" {
		n, err := byteunit.ParseBytes(flagPieceLength)
		if err != nil {
			return err
		}
		opts.PieceLength = int64(n)
	}

	dsp := display.NewDisplay(flagLink)
	opts.Progress = dsp

	start := time.Now()
	res, err := pipeline.Create(opts)
	if err != nil {
		return err
	}

	if flagLink {
		var peers []metainfo.HostPort
		for _, p := range flagPeers {
			hp, err := hostport.Parse(p)
			if err != nil {
				return err
			}
			peers = append(peers, hp)
		}
		uri := magnet.Format(res.InfoHash, magnet.Options{Name: res.Metainfo.Info.Name, Peers: peers})
		fmt.Fprintln(os.Stdout, uri)
		return nil
	}

	target := pipeline.ResolveOutputTarget(flagOutput, flagInputPath)

	if !flagDryRun {
		if err := pipeline.Write(target, res.Bytes, flagForce); err != nil {
			return err
		}
	}

	if !target.IsStdout() && !flagDryRun {
		display.ShowOutputPath(target.Path(), time.Since(start))
	}

	if flagShow {
		f := &display.Formatter{Verbose: true}
		fmt.Print(f.FormatSummary(res.Metainfo, res.InfoHash))
		fmt.Print(f.FormatFileTree(res.Metainfo))
	}

	if flagOpen && !target.IsStdout() && !flagDryRun {
		openWithHostOpener(target.Path())
	}

	return nil
}

// applyPreset merges a named preset over opts for every field the preset
// or its file's `default` section populates. Each preset field is applied
// only when the matching flag still holds its zero value, so a flag given
// a non-zero value takes precedence over the preset; -t tiers are
// appended by the caller after any tier the preset's trackers produced.
func applyPreset(opts pipeline.CreateOptions) (pipeline.CreateOptions, error) {
	if flagPresetName == "" {
		return opts, nil
	}

	presetFile := flagPresetFile
	if presetFile == "" {
		found, err := config.FindFile("")
		if err != nil {
			return opts, err
		}
		presetFile = found
	}

	cfg, err := config.Load(presetFile)
	if err != nil {
		return opts, err
	}

	preset, err := cfg.Get(flagPresetName)
	if err != nil {
		return opts, err
	}

	if preset.Private != nil && !flagPrivate {
		opts.Private = *preset.Private
	}
	if preset.Comment != "" && flagComment == "" {
		opts.Comment = preset.Comment
	}
	if preset.Source != "" && flagSource == "" {
		opts.Source = preset.Source
	}
	if len(preset.Trackers) > 0 && flagAnnounce == "" {
		opts.Announce = preset.Trackers[0]
		if len(preset.Trackers) > 1 {
			opts.AnnounceList = [][]string{preset.Trackers}
		}
	}
	if len(preset.WebSeeds) > 0 && len(opts.WebSeeds) == 0 {
		opts.WebSeeds = preset.WebSeeds
	}
	if preset.NoDate != nil && !flagNoCreateDate {
		opts.NoCreationDate = *preset.NoDate
	}
	if preset.NoCreator != nil && !flagNoCreatedBy {
		opts.NoCreatedBy = *preset.NoCreator
	}
	if preset.Entropy != nil && !flagEntropy {
		opts.Entropy = *preset.Entropy
	}
	if len(preset.Include) > 0 && len(opts.Globs) == 0 {
		opts.Globs = preset.Include
	}
	if len(preset.Exclude) > 0 && len(opts.Globs) == 0 {
		excl := make([]string, len(preset.Exclude))
		for i, g := range preset.Exclude {
			excl[i] = "!" + g
		}
		opts.Globs = excl
	}
	if preset.PieceLength != "" && flagPieceLength == "" {
		n, err := byteunit.ParseBytes(preset.PieceLength)
		if err != nil {
			return opts, err
		}
		opts.PieceLength = int64(n)
	}

	return opts, nil
}
