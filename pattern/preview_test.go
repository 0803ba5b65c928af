package pattern

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	_ "image/gif"
	_ "image/png"

	"github.com/mazznoer/csscolorparser"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview_Dimensions(t *testing.T) {
	g := smallGeometry(ModeSequential, 8)
	for _, format := range []string{"png", "gif"} {
		var buf bytes.Buffer
		err := RenderPreview(&buf, ModeSequential, g, 4, PreviewOptions{Scale: 2, Format: format})
		require.NoError(t, err)
		config, decoded, err := image.DecodeConfig(&buf)
		require.NoError(t, err)
		require.Equal(t, format, decoded)
		require.Equal(t, 2048*2, config.Width)
		require.Equal(t, 4*2, config.Height)
	}
}

func TestRenderPreview_Pixels(t *testing.T) {
	g := smallGeometry(ModeLegacy, 2)
	var buf bytes.Buffer
	err := RenderPreview(&buf, ModeLegacy, g, 2, PreviewOptions{Low: "black", High: "white"})
	require.NoError(t, err)
	img, _, err := image.Decode(&buf)
	require.NoError(t, err)
	// Reserved byte is 0xFF (white), filler starts at 0 (black)
	r, gg, b, _ := img.At(1, 0).RGBA()
	require.Equal(t, []uint32{0xFFFF, 0xFFFF, 0xFFFF}, []uint32{r, gg, b})
	r, gg, b, _ = img.At(StampFillerIndex, 0).RGBA()
	require.Equal(t, []uint32{0, 0, 0}, []uint32{r, gg, b})
}

func TestRenderPreview_BadOptions(t *testing.T) {
	g := smallGeometry(ModeLegacy, 2)
	var buf bytes.Buffer
	require.Error(t, RenderPreview(&buf, ModeLegacy, g, 1, PreviewOptions{Format: "webp"}))
	require.Error(t, RenderPreview(&buf, ModeLegacy, g, 1, PreviewOptions{Low: "notacolor"}))
	require.Error(t, RenderPreview(&buf, ModeIntegrity, g, 1, PreviewOptions{}))
	err := RenderPreview(&buf, ModeLegacy, g, 0, PreviewOptions{})
	require.ErrorContains(t, err, "at least one row")
	require.Zero(t, buf.Len())
}

func TestPreviewPalette(t *testing.T) {
	low, err := csscolorparser.Parse("#000000")
	require.NoError(t, err)
	high, err := csscolorparser.Parse("#FF0000")
	require.NoError(t, err)
	palette := PreviewPalette(low, high)
	require.Len(t, palette, 256)
	require.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, palette[0])
	require.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, palette[255])
}
