package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
)

func testEnhanceConfig() common.EnhanceConfig {
	return common.EnhanceConfig{
		DenoiseSigma:   0.8,
		Contrast:       20,
		ThresholdBlock: 11,
		ThresholdBias:  2,
	}
}

func gradientImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * 251) % 256)})
		}
	}
	return img
}

func TestEnhanceIsDeterministic(t *testing.T) {
	cfg := testEnhanceConfig()
	src := gradientImage(64, 48)

	a, err := Enhance(src, cfg)
	require.NoError(t, err)
	b, err := Enhance(src, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Pix, b.Pix)
	assert.Equal(t, a.Bounds(), b.Bounds())
}

func TestEnhanceBinarizes(t *testing.T) {
	out, err := Enhance(gradientImage(32, 32), testEnhanceConfig())
	require.NoError(t, err)

	for _, p := range out.Pix {
		assert.True(t, p == 0 || p == 255, "pixel %d is not binary", p)
	}
}

func TestEnhanceRejectsNilImage(t *testing.T) {
	_, err := Enhance(nil, testEnhanceConfig())
	assert.ErrorIs(t, err, common.ErrUnreadableImage)
}

func TestEnhanceRejectsEmptyBounds(t *testing.T) {
	_, err := Enhance(image.NewGray(image.Rect(0, 0, 0, 0)), testEnhanceConfig())
	assert.ErrorIs(t, err, common.ErrUnreadableImage)
}

func TestAdaptiveThresholdUniformInput(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	// with a positive bias every pixel sits above its local mean
	out := adaptiveThreshold(img, 11, 2)
	for _, p := range out.Pix {
		assert.Equal(t, uint8(255), p)
	}
}
