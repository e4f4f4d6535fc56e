// Package render draws debug PNGs of a polygon, a taut-string path, and a
// splinegon's angular decomposition. None of this is used by the core
// (spec.md explicitly keeps rendering out of scope for it); it exists the
// same way the teacher's dbgDraw/polygon_list_draw.go exists, as a
// non-core tool for visually sanity-checking what the algorithms produced.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/polygon"
	"github.com/arborview/sightline/splinegon"
)

const padding = 20.0

var labelFace font.Face

func init() {
	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// The embedded font is a build-time constant; a parse failure here
		// means the toolchain shipped a corrupt asset, not a runtime error
		// a caller can act on.
		panic(err)
	}
	labelFace = truetype.NewFace(parsed, &truetype.Options{Size: 12})
}

// Polygon rasterizes p, with an optional taut-string path overlaid in red
// and its interior pivots labeled, to a PNG file at path.
func Polygon(p *polygon.Polygon, tautPath []geom.Point, scale float64, outPath string) error {
	minX, minY, maxX, maxY := bounds(p)
	width := int(scale*(maxX-minX)) + int(padding*2)
	height := int(scale*(maxY-minY)) + int(padding*2)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Translate(padding-minX*scale, float64(height)-padding+minY*scale)
	dc.Scale(scale, -scale)
	dc.SetFontFace(labelFace)

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1 / scale)
	for i := 0; i < p.Size(); i++ {
		v := p.Vertex(i)
		if i == 0 {
			dc.MoveTo(v.X, v.Y)
		} else {
			dc.LineTo(v.X, v.Y)
		}
	}
	dc.ClosePath()
	dc.StrokePreserve()
	dc.SetRGBA(0.6, 0.8, 1, 0.4)
	dc.Fill()

	if len(tautPath) > 0 {
		dc.SetRGB(0.8, 0.1, 0.1)
		dc.SetLineWidth(2 / scale)
		for i, v := range tautPath {
			if i == 0 {
				dc.MoveTo(v.X, v.Y)
			} else {
				dc.LineTo(v.X, v.Y)
			}
		}
		dc.Stroke()
		for i, v := range tautPath[1 : len(tautPath)-1] {
			dc.DrawCircle(v.X, v.Y, 3/scale)
			dc.SetColor(color.Black)
			dc.Fill()
			dc.DrawStringAnchored(fmt.Sprintf("pivot %d", i), v.X, v.Y, 0.5, -1)
		}
	}

	return dc.SavePNG(outPath)
}

// SplinegonWedges draws the diagram's angular sectors as colored wedges
// around the origin, for visually checking coverage of [-pi, pi].
func SplinegonWedges(d *splinegon.Diagram, radius float64, outPath string) error {
	size := int(radius*2 + padding*2)
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Translate(float64(size)/2, float64(size)/2)

	arcs := d.Arcs()
	for i, arc := range arcs {
		hue := float64(i) / math.Max(1, float64(len(arcs)))
		dc.MoveTo(0, 0)
		dc.LineTo(radius*math.Cos(arc.ThetaStart), -radius*math.Sin(arc.ThetaStart))
		dc.DrawArc(0, 0, radius, -arc.ThetaEnd, -arc.ThetaStart)
		dc.ClosePath()
		r, g, b := hsvToRGB(hue, 0.5, 0.9)
		dc.SetRGBA(r, g, b, 0.6)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	return dc.SavePNG(outPath)
}

func bounds(p *polygon.Polygon) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i < p.Size(); i++ {
		v := p.Vertex(i)
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
