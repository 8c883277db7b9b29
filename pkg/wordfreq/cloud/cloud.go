package cloud

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/psykhi/wordclouds"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
)

// Default canvas geometry, matching the report's landscape layout.
const (
	DefaultWidth    = 1000
	DefaultHeight   = 600
	DefaultFontFile = "assets/Roboto-Regular.ttf"
)

// Options configures the renderer. Zero fields fall back to defaults.
type Options struct {
	Width      int
	Height     int
	FontFile   string // path to a TTF font, required by the rasterizer
	Background color.Color
	Colors     []color.Color
}

// DefaultOptions returns the standard white-background canvas with a
// small fixed palette.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		FontFile:   DefaultFontFile,
		Background: color.White,
		Colors: []color.Color{
			color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
			color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		},
	}
}

// Renderer turns a frequency table into a word-cloud image. It wraps
// the external rasterizer; the rest of the pipeline only ever hands it
// a table and a destination.
type Renderer struct {
	opts Options
}

// New creates a renderer, filling unset options with defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.FontFile == "" {
		opts.FontFile = def.FontFile
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if len(opts.Colors) == 0 {
		opts.Colors = def.Colors
	}
	return &Renderer{opts: opts}
}

// Render draws the full frequency distribution. An empty table is
// rejected before the rasterizer is invoked: rendering an empty cloud
// is undefined, callers treat the ErrNoData case as "skip". The font
// file is checked up front so the external sink never fails half-way.
func (r *Renderer) Render(t freq.Table) (image.Image, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("render word cloud: %w", internalerr.ErrNoData)
	}
	if _, err := os.Stat(r.opts.FontFile); err != nil {
		return nil, fmt.Errorf("word cloud font %s: %w", r.opts.FontFile, err)
	}

	wc := wordclouds.NewWordcloud(map[string]int(t),
		wordclouds.FontFile(r.opts.FontFile),
		wordclouds.Width(r.opts.Width),
		wordclouds.Height(r.opts.Height),
		wordclouds.BackgroundColor(r.opts.Background),
		wordclouds.Colors(r.opts.Colors),
	)
	return wc.Draw(), nil
}

// SavePNG renders the table and writes the image as PNG to path,
// creating parent directories as needed.
func (r *Renderer) SavePNG(path string, t freq.Table) error {
	img, err := r.Render(t)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode image %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close image %s: %w", path, err)
	}
	return nil
}
