// Command fontatlas packs the glyphs of a font into an atlas image.
//
// It writes the atlas as a PNG and, optionally, the character table as JSON:
//
//	fontatlas -font Roboto-Regular.ttf -size 48 -range 0x20-0x7e -out atlas.png -table atlas.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/charset"
	"github.com/gogpu/fontatlas/text"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		size     = flag.Int("size", fontatlas.DefaultPixelSize, "pixel size")
		chars    = flag.String("chars", "", "characters to pack")
		span     = flag.String("range", "", "inclusive code point range, e.g. 0x20-0x7e or U+0400-U+04FF")
		nfc      = flag.Bool("nfc", false, "NFC-normalize -chars before packing")
		backend  = flag.String("backend", text.BackendXImage, "rasterizer backend")
		maxDim   = flag.Int("max", 0, "maximum atlas width (default: 16384)")
		output   = flag.String("out", "atlas.png", "output PNG file")
		tableOut = flag.String("table", "", "output JSON file for the character table")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	set, err := characterSet(*chars, *span, *nfc)
	if err != nil {
		fatal(err)
	}

	data := goregular.TTF
	if *fontPath != "" {
		if data, err = os.ReadFile(*fontPath); err != nil {
			fatal(err)
		}
	}

	opts := []fontatlas.BuildOption{
		fontatlas.WithPixelSize(*size),
		fontatlas.WithBackend(*backend),
	}
	if *maxDim > 0 {
		opts = append(opts, fontatlas.WithMaxTextureDimension(*maxDim))
	}

	res, err := fontatlas.Load(data, set, opts...)
	if err != nil {
		fatal(err)
	}

	if err := res.SavePNG(*output); err != nil {
		fatal(err)
	}
	if *tableOut != "" {
		if err := writeTable(*tableOut, res); err != nil {
			fatal(err)
		}
	}

	printSummary(res, *output)
}

func fatal(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}

// characterSet combines -chars and -range. With neither set, printable
// ASCII is packed.
func characterSet(chars, span string, nfc bool) (charset.Set, error) {
	var set charset.Set
	if chars != "" {
		if nfc {
			set = charset.FromNormalizedString(chars, norm.NFC)
		} else {
			set = charset.FromString(chars)
		}
	}
	if span != "" {
		r, err := parseRange(span)
		if err != nil {
			return charset.Set{}, err
		}
		set = set.Union(r)
	}
	if chars == "" && span == "" {
		set = charset.Range(' ', '~')
	}
	return set, nil
}

func parseRange(s string) (charset.Set, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return charset.Set{}, fmt.Errorf("range %q: want FIRST-LAST", s)
	}
	first, err := parseCodePoint(lo)
	if err != nil {
		return charset.Set{}, fmt.Errorf("range %q: %w", s, err)
	}
	last, err := parseCodePoint(hi)
	if err != nil {
		return charset.Set{}, fmt.Errorf("range %q: %w", s, err)
	}
	if first > last {
		return charset.Set{}, fmt.Errorf("range %q: first is after last", s)
	}
	return charset.Range(first, last), nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		s = "0x" + hex
	}
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New("negative code point")
	}
	return rune(v), nil
}

type tableEntry struct {
	Char   string `json:"char"`
	Code   int    `json:"code"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type tableFile struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	FontHeight int          `json:"fontHeight"`
	Entries    []tableEntry `json:"entries"`
}

func writeTable(path string, res *fontatlas.FontResource) error {
	tf := tableFile{
		Width:      res.Width(),
		Height:     res.Height(),
		FontHeight: res.FontHeight(),
	}
	for r, info := range res.Table().All() {
		tf.Entries = append(tf.Entries, tableEntry{
			Char:   string(r),
			Code:   int(r),
			X:      info.X,
			Y:      info.Y,
			Width:  info.Width,
			Height: info.Height,
		})
	}

	data, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func printSummary(res *fontatlas.FontResource, output string) {
	data := pterm.TableData{
		{"Property", "Value"},
		{"Atlas", fmt.Sprintf("%dx%d", res.Width(), res.Height())},
		{"Pixel size", strconv.Itoa(res.FontHeight())},
		{"Characters", strconv.Itoa(res.Table().Len())},
		{"Output", output},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fontatlas.Logger().Warn("fontatlas: render summary", "err", err)
	}
}
