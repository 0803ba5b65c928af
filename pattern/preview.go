package pattern

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/mazznoer/csscolorparser"
	"github.com/nfnt/resize"
)

type PreviewOptions struct {
	Low    string // Color for byte value 0
	High   string // Color for byte value 255
	Scale  int    // Integer upscale of each byte pixel
	Format string // png, gif, bmp, jpg
}

func (o *PreviewOptions) ReasonableDefaults() {
	if o.Low == "" {
		o.Low = "#000000"
	}
	if o.High == "" {
		o.High = "#FFFFFF"
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.Format == "" {
		o.Format = "png"
	}
}

func lerpChannel(low float64, high float64, t float64) uint8 {
	return uint8(0.5 + 255*(low+(high-low)*t))
}

// A 256 entry palette going from the low color to the high color
func PreviewPalette(low csscolorparser.Color, high csscolorparser.Color) color.Palette {
	palette := make(color.Palette, 256)
	for i := range palette {
		t := float64(i) / 255
		palette[i] = color.RGBA{
			R: lerpChannel(low.R, high.R, t),
			G: lerpChannel(low.G, high.G, t),
			B: lerpChannel(low.B, high.B, t),
			A: 255,
		}
	}
	return palette
}

// Draw the first rows of a run as an image: one pixel per byte, one line of
// pixels per data row. Handy to eyeball the stamp and filler columns.
func RenderPreview(w io.Writer, mode Mode, geometry Geometry, rows uint64, options PreviewOptions) error {
	if rows == 0 {
		return fmt.Errorf("Preview needs at least one row")
	}
	options.ReasonableDefaults()
	format, err := imaging.FormatFromExtension(options.Format)
	if err != nil {
		return err
	}
	low, err := csscolorparser.Parse(options.Low)
	if err != nil {
		return fmt.Errorf("Couldn't parse low color: %w", err)
	}
	high, err := csscolorparser.Parse(options.High)
	if err != nil {
		return fmt.Errorf("Couldn't parse high color: %w", err)
	}
	data, err := SampleRows(mode, geometry, rows)
	if err != nil {
		return err
	}
	width := int(geometry.BytesPerRow())
	height := len(data) / width
	img := image.NewPaletted(image.Rect(0, 0, width, height), PreviewPalette(low, high))
	copy(img.Pix, data)
	var final image.Image = img
	if options.Scale > 1 {
		final = resize.Resize(uint(width*options.Scale), uint(height*options.Scale), img, resize.NearestNeighbor)
	}
	return imaging.Encode(w, final, format)
}
