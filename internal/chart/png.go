package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoBars indicates a comparison with no groups was passed to a renderer.
var ErrNoBars = errors.New("chart has no bars to render")

const (
	pngBarWidth   = 36
	pngBarSpacing = 12
	pngMinWidth   = 800
	pngHeight     = 480
	pngMaxTicks   = 10
)

// PNGOption configures RenderPNG.
type PNGOption func(*pngOptions)

type pngOptions struct {
	font *truetype.Font
}

// WithFont sets the TrueType font used for all text. The default font has
// no Hangul glyphs, so Korean labels need one.
func WithFont(f *truetype.Font) PNGOption {
	return func(o *pngOptions) { o.font = f }
}

// LoadFont parses a TrueType font file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return f, nil
}

// RenderPNG draws the comparison as a PNG bar chart. Bars are laid out
// required/current per label and colored from the fixed palette; each bar
// label carries the score kind and value.
func RenderPNG(w io.Writer, c Comparison, opts ...PNGOption) error {
	if c.Empty() {
		return ErrNoBars
	}
	var o pngOptions
	for _, opt := range opts {
		opt(&o)
	}

	values := make([]gochart.Value, 0, c.BarCount())
	for i, b := range c.Bars() {
		color := drawing.ColorFromHex(strings.TrimPrefix(b.Color, "#"))
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s %s %d", c.Groups[i/2].Label, shortKind(b), b.Value),
			Value: float64(b.Value),
			Style: gochart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
	}

	width := len(values)*(pngBarWidth+pngBarSpacing) + 160
	if width < pngMinWidth {
		width = pngMinWidth
	}

	var ticks []gochart.Tick
	for _, v := range c.Ticks(pngMaxTicks) {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
	}

	bc := gochart.BarChart{
		Title:      c.Title,
		Width:      width,
		Height:     pngHeight,
		BarWidth:   pngBarWidth,
		BarSpacing: pngBarSpacing,
		Font:       o.font,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: float64(c.YMin), Max: float64(c.YMax)},
			Ticks: ticks,
		},
		Bars: values,
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// WritePNGFile renders the comparison to path.
func WritePNGFile(path string, c Comparison, opts ...PNGOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := RenderPNG(f, c, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func shortKind(b Bar) string {
	name := []rune(b.Kind.DisplayName())
	if len(name) > 2 {
		return string(name[:2])
	}
	return string(name)
}
