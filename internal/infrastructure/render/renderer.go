package render

import (
	"image/color"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"github.com/riskibarqy/season-insights/internal/platform/tracing"
	"github.com/valyala/bytebufferpool"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultWidthInch  = 8.0
	DefaultHeightInch = 6.0

	ContentTypePNG = "image/png"
)

var tracer = tracing.New("infrastructure/render")

// Renderer rasterizes chart artifacts to PNG. It keeps no state between
// calls and is safe for concurrent use.
type Renderer struct {
	width  vg.Length
	height vg.Length
}

func NewRenderer(widthInch, heightInch float64) *Renderer {
	if widthInch <= 0 {
		widthInch = DefaultWidthInch
	}
	if heightInch <= 0 {
		heightInch = DefaultHeightInch
	}
	return &Renderer{
		width:  vg.Length(widthInch) * vg.Inch,
		height: vg.Length(heightInch) * vg.Inch,
	}
}

func (r *Renderer) encode(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return nil, crerr.Wrap(err, "prepare png canvas")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := writer.WriteTo(buf); err != nil {
		return nil, crerr.Wrap(err, "encode png")
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// rgba parses "#rrggbb". Malformed values fall back to black.
func rgba(c chart.Color) color.RGBA {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) != 6 {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	return p
}
