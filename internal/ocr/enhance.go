package ocr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
)

// Enhance prepares a scanned bitmap for OCR: grayscale, light gaussian
// denoise, contrast stretch, then mean adaptive thresholding. Pure and
// deterministic for a given input and config.
func Enhance(src image.Image, cfg common.EnhanceConfig) (*image.Gray, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", common.ErrUnreadableImage)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty bounds %v", common.ErrUnreadableImage, b)
	}

	img := imaging.Grayscale(src)
	if cfg.DenoiseSigma > 0 {
		img = imaging.Blur(img, cfg.DenoiseSigma)
	}
	if cfg.Contrast != 0 {
		img = imaging.AdjustContrast(img, cfg.Contrast)
	}

	gray := toGray(img)
	return adaptiveThreshold(gray, cfg.ThresholdBlock, cfg.ThresholdBias), nil
}

func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x, y, src.At(x, y))
		}
	}
	return g
}

// adaptiveThreshold binarizes gray against the mean of a block x block window
// around each pixel, offset by bias. Uses a summed-area table so the window
// size does not affect runtime.
func adaptiveThreshold(gray *image.Gray, block, bias int) *image.Gray {
	if block < 3 {
		block = 11
	}
	if block%2 == 0 {
		block++
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()

	// integral[y][x] = sum of pixels in [0,y) x [0,x)
	integral := make([][]uint64, h+1)
	for i := range integral {
		integral[i] = make([]uint64, w+1)
	}
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := block / 2
	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		y0, y1 := max(0, y-half), min(h-1, y+half)
		for x := 0; x < w; x++ {
			x0, x1 := max(0, x-half), min(w-1, x+half)
			count := uint64((y1 - y0 + 1) * (x1 - x0 + 1))
			sum := integral[y1+1][x1+1] - integral[y0][x1+1] - integral[y1+1][x0] + integral[y0][x0]
			mean := sum / count
			v := uint8(0)
			if uint64(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)+uint64(bias) > mean {
				v = 255
			}
			out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
		}
	}
	return out
}
