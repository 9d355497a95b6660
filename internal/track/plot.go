package track

import (
	"image"
	"image/color"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
)

// supersample is the oversampling factor of the curve pass.
const supersample = 2

var (
	background = color.NRGBA{R: 18, G: 18, B: 24, A: 255}
	bandLine   = color.NRGBA{R: 70, G: 70, B: 90, A: 255}
	labelColor = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	axisColors = [3]color.NRGBA{
		{R: 230, G: 90, B: 80, A: 255},
		{R: 110, G: 200, B: 100, A: 255},
		{R: 90, G: 140, B: 240, A: 255},
	}
)

// Plot draws the camera position components (x red, y green, z blue) against scroll offset, with a
// vertical line and label at every section start.
//
// Parameters:
//   - table: the sampled table, for band starts and names
//   - samples: ordered samples from SampleTable
//   - width, height: output size in pixels
//
// Returns:
//   - *image.NRGBA: the plot
func Plot(table section.Table, samples []Sample, width, height int) *image.NRGBA {
	width, height = max(width, 16), max(height, 16)
	w, h := width*supersample, height*supersample

	big := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(big, big.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i := 0; i < table.Count(); i++ {
		x := int(table.OffsetFromSection(i) * float32(w-1))
		for y := 0; y < h; y++ {
			big.SetNRGBA(x, y, bandLine)
		}
	}

	lo, hi := positionRange(samples)
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for axis := 0; axis < 3; axis++ {
		prevX, prevY := -1, -1
		for _, s := range samples {
			x := int(s.Offset * float32(w-1))
			v := (s.Pose.Position[axis] - lo) / span
			y := (h - 1) - int(v*float32(h-1))
			if prevX >= 0 {
				line(big, prevX, prevY, x, y, axisColors[axis])
			}
			prevX, prevY = x, y
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)

	// Labels after the downscale so the bitmap font stays crisp.
	d := &font.Drawer{Dst: out, Src: image.NewUniform(labelColor), Face: basicfont.Face7x13}
	for i := 0; i < table.Count(); i++ {
		x := int(table.OffsetFromSection(i)*float32(width-1)) + 2
		y := 13 + (i%2)*13
		d.Dot = fixed.P(x, y)
		d.DrawString(table.Entry(i).Name)
	}
	return out
}

// EncodeWebP writes img as a lossless WebP.
//
// Parameters:
//   - w: destination
//   - img: the image to encode
//
// Returns:
//   - error: encoder failure
func EncodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func positionRange(samples []Sample) (lo, hi float32) {
	if len(samples) == 0 {
		return 0, 1
	}
	lo, hi = samples[0].Pose.Position[0], samples[0].Pose.Position[0]
	for _, s := range samples {
		for _, v := range s.Pose.Position {
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	return lo, hi
}

// line draws a one-pixel segment with Bresenham's algorithm.
func line(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetNRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
