package intensity

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"runtime"
	"strings"
	"sync"

	// Register decoders. GIF is registered so a GIF upload is identified and
	// rejected by name instead of failing as an unreadable image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"gonum.org/v1/gonum/stat"

	apperrors "go-image-intensity/internal/errors"
	"go-image-intensity/pkg/models"
)

// Calculator computes the mean grayscale intensity of an encoded image.
type Calculator interface {
	Calculate(data []byte, allowedFormats []string) (*models.AnalysisResult, error)
}

// calculator implements Calculator with parallel strip processing
type calculator struct {
	slicePool sync.Pool
}

func NewCalculator() Calculator {
	return &calculator{
		slicePool: sync.Pool{
			New: func() interface{} {
				return make([]float64, 0, 4096)
			},
		},
	}
}

// Calculate decodes the image, validates its format against the allow-list
// and returns the arithmetic mean of the grayscale pixel values in [0, 255],
// rounded to two decimals. The same bytes always yield a bit-identical result.
func (c *calculator) Calculate(data []byte, allowedFormats []string) (*models.AnalysisResult, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("error processing image: %v", err), err)
	}

	format = strings.ToUpper(format)
	if !formatAllowed(format, allowedFormats) {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"image must be in one of the following formats: %s (received: %s)",
			strings.Join(allowedFormats, ", "), format), nil)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, apperrors.NewValidationError("image has no pixels", nil)
	}

	mean := c.meanIntensity(img)

	return &models.AnalysisResult{
		AverageIntensity: math.Round(mean*100) / 100,
		Width:            width,
		Height:           height,
		OriginalMode:     originalMode(img),
		PixelCount:       int64(width) * int64(height),
	}, nil
}

// meanIntensity averages the grayscale value of every pixel, processing the
// image in horizontal strips for cache locality.
func (c *calculator) meanIntensity(img image.Image) float64 {
	bounds := img.Bounds()
	height := bounds.Dy()

	numWorkers := runtime.NumCPU()
	if height < numWorkers {
		numWorkers = height
	}
	rowsPerWorker := (height + numWorkers - 1) / numWorkers // ceil division

	type stripResult struct {
		mean   float64
		pixels int
	}

	results := make(chan stripResult, numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		startY := bounds.Min.Y + i*rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > bounds.Max.Y {
			endY = bounds.Max.Y
		}
		go func(startY, endY int) {
			defer wg.Done()

			values := c.slicePool.Get().([]float64)[:0]
			for y := startY; y < endY; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					values = append(values, grayValue(r, g, b))
				}
			}

			res := stripResult{pixels: len(values)}
			if len(values) > 0 {
				res.mean = stat.Mean(values, nil)
			}
			c.slicePool.Put(values)
			results <- res
		}(startY, endY)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var weightedSum float64
	totalPixels := 0
	for res := range results {
		weightedSum += res.mean * float64(res.pixels)
		totalPixels += res.pixels
	}
	if totalPixels == 0 {
		return 0
	}
	return weightedSum / float64(totalPixels)
}

// grayValue converts a 16-bit RGB triple to an 8-bit grayscale value using
// ITU-R 601-2 luma weights with rounding, matching the reference
// implementation's grayscale conversion bit for bit.
func grayValue(r, g, b uint32) float64 {
	r8 := r >> 8
	g8 := g >> 8
	b8 := b >> 8
	return float64((r8*19595 + g8*38470 + b8*7471 + 1<<15) >> 16)
}

func formatAllowed(format string, allowed []string) bool {
	for _, f := range allowed {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// originalMode reports the source color mode of the decoded image in the
// conventional mode names clients expect: L (grayscale), P (palette), RGB,
// RGBA, CMYK.
func originalMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return "L"
	case *image.Paletted:
		return "P"
	case *image.NRGBA, *image.NRGBA64:
		return "RGBA"
	case *image.RGBA, *image.RGBA64:
		return "RGB"
	case *image.CMYK:
		return "CMYK"
	default:
		// JPEG decodes to YCbCr, which is an RGB image in client terms.
		return "RGB"
	}
}
