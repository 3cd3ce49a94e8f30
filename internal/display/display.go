// Package display renders a created torrent's summary and live hashing
// progress to the terminal.
package display

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/torrentsmith/torrentsmith/internal/buildinfo"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

// Formatter renders Metainfo values to human-readable strings.
type Formatter struct {
	Verbose bool
}

// FormatSummary renders the `-S/--show` post-creation summary.
func (f *Formatter) FormatSummary(mi metainfo.Metainfo, hash metainfo.InfoHash) string {
	label := color.New(color.FgCyan).SprintFunc()
	value := color.New(color.FgWhite).SprintFunc()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%s %s\n", label("Name:"), value(mi.Info.Name))
	fmt.Fprintf(&buf, "%s %s\n", label("Size:"), value(humanize.Bytes(uint64(mi.Info.Mode.TotalLength()))))
	fmt.Fprintf(&buf, "%s %s\n", label("Hash:"), value(hash.String()))

	if !f.Verbose {
		return buf.String()
	}

	fmt.Fprintf(&buf, "%s %d\n", label("Pieces:"), mi.Info.Pieces.Count())
	fmt.Fprintf(&buf, "%s %s\n", label("Piece length:"), value(humanize.Bytes(uint64(mi.Info.PieceLength))))
	fmt.Fprintf(&buf, "%s %v\n", label("Private:"), value(mi.Info.Private))

	if mi.HasComment {
		fmt.Fprintf(&buf, "%s %s\n", label("Comment:"), value(mi.Comment))
	}
	if mi.HasAnnounce {
		fmt.Fprintf(&buf, "%s %s\n", label("Tracker:"), value(mi.Announce))
	}
	if mi.HasCreatedBy {
		fmt.Fprintf(&buf, "%s %s\n", label("Created by:"), value(mi.CreatedBy))
	}
	if mi.HasCreationDate {
		fmt.Fprintf(&buf, "%s %s\n", label("Created:"), value(time.Unix(int64(mi.CreationDate), 0).Format(time.RFC1123)))
	}
	if buildinfo.IsPrerelease() {
		fmt.Fprintf(&buf, "%s %s\n", label("Build:"), value("pre-release"))
	}
	return buf.String()
}

// FormatFileTree renders the files of a multi-file torrent as an
// indented list, one full slash-separated path and size per line; files
// are not grouped by directory.
func (f *Formatter) FormatFileTree(mi metainfo.Metainfo) string {
	if mi.Info.Mode.IsSingle() {
		return ""
	}

	var buf bytes.Buffer
	dirColor := color.New(color.FgYellow).SprintFunc()
	fileColor := color.New(color.FgWhite).SprintFunc()
	sizeColor := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(&buf, "\n%s  %s\n", dirColor("Files"), mi.Info.Name)

	prefix := "       "
	for i, file := range mi.Info.Mode.Files {
		connector := "├─"
		if i == len(mi.Info.Mode.Files)-1 {
			connector = "└─"
		}
		fmt.Fprintf(&buf, "%s%s%s [%s]\n", prefix, connector, fileColor(file.Path.String()), sizeColor(humanize.Bytes(uint64(file.Length))))
	}
	return buf.String()
}

// FormatMagnet renders the magnet-link display line.
func FormatMagnet(uri string) string {
	label := color.New(color.FgCyan).SprintFunc()
	value := color.New(color.FgWhite).SprintFunc()
	return fmt.Sprintf("%s %s\n", label("Magnet Link:"), value(uri))
}

// Display drives a progressbar.ProgressBar as a pipeline.Progress sink.
type Display struct {
	bar   *progressbar.ProgressBar
	quiet bool
}

// NewDisplay constructs a Display; quiet suppresses the progress bar
// entirely (but not the final summary, which callers print separately).
func NewDisplay(quiet bool) *Display {
	return &Display{quiet: quiet}
}

func (d *Display) Start(totalBytes int64) {
	if d.quiet || totalBytes <= 0 {
		return
	}
	d.bar = progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetDescription("[cyan]Hashing[reset]"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[cyan]=[reset]",
			SaucerHead:    "[cyan]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (d *Display) Update(bytesDone int64) {
	if d.bar != nil {
		_ = d.bar.Set64(bytesDone)
	}
}

func (d *Display) Finish() {
	if d.bar != nil {
		_ = d.bar.Finish()
	}
}

// ShowMessage prints a single informational line.
func ShowMessage(msg string) {
	fmt.Println(msg)
}

// ShowWarning prints a single warning line in yellow.
func ShowWarning(msg string) {
	warn := color.New(color.FgYellow).SprintFunc()
	fmt.Printf("%s %s\n", warn("Warning:"), msg)
}

// ShowOutputPath prints where the torrent was written.
func ShowOutputPath(path string, d time.Duration) {
	ok := color.New(color.FgGreen).SprintFunc()
	value := color.New(color.FgWhite).SprintFunc()
	fmt.Printf("\n%s %s [%s]\n", ok("Output:"), value(path), ok(d.Round(time.Millisecond)))
}
