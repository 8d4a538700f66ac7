package processor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-image-intensity/internal/intensity"
	"go-image-intensity/pkg/processingpb"
)

func grayPNG(t *testing.T, width, height int, value uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func solidGIF(t *testing.T) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
		color.Gray{Y: 128},
		color.Gray{Y: 0},
	})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode GIF: %v", err)
	}
	return buf.Bytes()
}

func TestAnalyzeImage_Success(t *testing.T) {
	server := NewServer(intensity.NewCalculator())

	resp, err := server.AnalyzeImage(context.Background(), &processingpb.AnalysisRequest{
		ImageData:      grayPNG(t, 2, 2, 128),
		AllowedFormats: []string{"PNG", "JPEG"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if resp.GetAverageIntensity() != 128.0 {
		t.Errorf("Expected average intensity 128.0, got %f", resp.GetAverageIntensity())
	}
	if resp.GetWidth() != 2 || resp.GetHeight() != 2 {
		t.Errorf("Expected 2x2, got %dx%d", resp.GetWidth(), resp.GetHeight())
	}
	if resp.GetOriginalMode() != "L" {
		t.Errorf("Expected mode L, got %s", resp.GetOriginalMode())
	}
	if resp.GetPixelCount() != 4 {
		t.Errorf("Expected pixel count 4, got %d", resp.GetPixelCount())
	}
}

func TestAnalyzeImage_DisallowedFormat(t *testing.T) {
	server := NewServer(intensity.NewCalculator())

	_, err := server.AnalyzeImage(context.Background(), &processingpb.AnalysisRequest{
		ImageData:      solidGIF(t),
		AllowedFormats: []string{"PNG", "JPEG"},
	})
	if err == nil {
		t.Fatal("Expected an error for a GIF upload")
	}

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("Expected a gRPC status error, got %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Errorf("Expected InvalidArgument, got %s", st.Code())
	}
	if !strings.Contains(st.Message(), "GIF") {
		t.Errorf("Expected the message to name the received format, got %q", st.Message())
	}
}

func TestAnalyzeImage_CorruptInput(t *testing.T) {
	server := NewServer(intensity.NewCalculator())

	_, err := server.AnalyzeImage(context.Background(), &processingpb.AnalysisRequest{
		ImageData:      []byte("not an image"),
		AllowedFormats: []string{"PNG"},
	})
	if err == nil {
		t.Fatal("Expected an error for corrupt input")
	}
	if st, _ := status.FromError(err); st.Code() != codes.InvalidArgument {
		t.Errorf("Expected InvalidArgument, got %s", st.Code())
	}
}
