package heatmap

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sartorproj/latticecorr/stats"
)

const (
	marginTop    = 44
	marginLeft   = 64
	marginBottom = 56
	barGap       = 24
	barWidth     = 20
	barLabels    = 56
	titlePad     = 20
)

var textColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// RenderPNG draws m as a titled, axis-labelled heatmap with a colour bar and
// encodes it as PNG to w.
func RenderPNG(w io.Writer, m *stats.CorrelationMatrix, opts *Options) error {
	img, err := Render(m, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render draws m into an image.
func Render(m *stats.CorrelationMatrix, opts *Options) (*image.RGBA, error) {
	if m == nil {
		return nil, errors.New("heatmap: nil matrix")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	cs := opts.CellSize
	if cs <= 0 {
		cs = DefaultOptions().CellSize
	}

	face := basicfont.Face7x13
	title := Title(m.RowLabel(), m.ColLabel())

	n := m.Size()
	grid := n * cs
	width := marginLeft + grid + barGap + barWidth + barLabels
	if tw := textWidth(face, title) + 2*titlePad; tw > width {
		width = tw
	}
	if xw := marginLeft + textWidth(face, XLabel(m.ColLabel())) + titlePad; xw > width {
		width = xw
	}
	height := marginTop + grid + marginBottom
	if yh := marginTop + textWidth(face, YLabel(m.RowLabel())) + titlePad; yh > height {
		height = yh
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	sc := newScale(m, opts.FixedScale)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			cell := image.Rect(
				marginLeft+j*cs, marginTop+i*cs,
				marginLeft+(j+1)*cs, marginTop+(i+1)*cs,
			)
			draw.Draw(img, cell, image.NewUniform(cool(sc.norm(v))), image.Point{}, draw.Src)
		}
	}

	drawText(img, face, title, (width-textWidth(face, title))/2, 24)

	// Ticks, 1-based.
	for k := 0; k < n; k++ {
		lbl := strconv.Itoa(k + 1)
		x := marginLeft + k*cs + (cs-textWidth(face, lbl))/2
		drawText(img, face, lbl, x, marginTop+grid+16)
		y := marginTop + k*cs + cs/2 + 5
		drawText(img, face, lbl, marginLeft-8-textWidth(face, lbl), y)
	}

	xl := XLabel(m.ColLabel())
	drawText(img, face, xl, marginLeft+(grid-textWidth(face, xl))/2, marginTop+grid+40)
	drawVerticalText(img, face, YLabel(m.RowLabel()), 8, marginTop+grid/2)

	drawColorBar(img, face, sc, marginLeft+grid+barGap, marginTop, grid)

	return img, nil
}

func drawColorBar(img *image.RGBA, face font.Face, sc scale, x, y, h int) {
	if h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		t := 1 - float64(row)/float64(max(h-1, 1))
		line := image.Rect(x, y+row, x+barWidth, y+row+1)
		draw.Draw(img, line, image.NewUniform(cool(t)), image.Point{}, draw.Src)
	}
	outline := image.NewUniform(textColor)
	draw.Draw(img, image.Rect(x, y, x+barWidth, y+1), outline, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x, y+h-1, x+barWidth, y+h), outline, image.Point{}, draw.Src)

	mid := (sc.min + sc.max) / 2
	labels := []struct {
		v float64
		y int
	}{
		{sc.max, y + 10},
		{mid, y + h/2 + 5},
		{sc.min, y + h},
	}
	for _, l := range labels {
		drawText(img, face, strconv.FormatFloat(l.v, 'f', 2, 64), x+barWidth+6, l.y)
	}
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawText(img draw.Image, face font.Face, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// drawVerticalText draws s rotated a quarter turn counter-clockwise, centred on cy.
func drawVerticalText(img *image.RGBA, face font.Face, s string, x, cy int) {
	tw := textWidth(face, s)
	th := face.Metrics().Height.Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, tw, th))
	drawText(tmp, face, s, 0, face.Metrics().Ascent.Ceil())

	top := cy - tw/2
	if top < 4 {
		top = 4
	}
	for sx := 0; sx < tw; sx++ {
		for sy := 0; sy < th; sy++ {
			c := tmp.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			img.SetRGBA(x+sy, top+tw-1-sx, c)
		}
	}
}
