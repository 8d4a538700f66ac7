package backend

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	apperrors "go-image-intensity/internal/errors"
	"go-image-intensity/pkg/processingpb"
)

// stubProcessor is an in-process ImageProcessor with scripted behavior.
type stubProcessor struct {
	processingpb.UnimplementedImageProcessorServer
	resp  *processingpb.AnalysisResponse
	err   error
	delay time.Duration
}

func (s *stubProcessor) AnalyzeImage(ctx context.Context, _ *processingpb.AnalysisRequest) (*processingpb.AnalysisResponse, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestAnalyzer(t *testing.T, stub *stubProcessor, timeout time.Duration) *GRPCAnalyzer {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	processingpb.RegisterImageProcessorServer(server, stub)
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Failed to dial bufconn: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewGRPCAnalyzer(conn, timeout)
}

func TestAnalyze_Success(t *testing.T) {
	analyzer := newTestAnalyzer(t, &stubProcessor{
		resp: &processingpb.AnalysisResponse{
			AverageIntensity: 128.0,
			Width:            2,
			Height:           2,
			OriginalMode:     "L",
			PixelCount:       4,
		},
	}, time.Second)

	result, err := analyzer.Analyze(context.Background(), []byte("image bytes"), []string{"PNG", "JPEG"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.AverageIntensity != 128.0 {
		t.Errorf("Expected average intensity 128.0, got %f", result.AverageIntensity)
	}
	if result.Width != 2 || result.Height != 2 {
		t.Errorf("Expected 2x2, got %dx%d", result.Width, result.Height)
	}
	if result.OriginalMode != "L" {
		t.Errorf("Expected mode L, got %s", result.OriginalMode)
	}
	if result.PixelCount != 4 {
		t.Errorf("Expected pixel count 4, got %d", result.PixelCount)
	}
}

func TestAnalyze_InvalidArgumentBecomesValidationError(t *testing.T) {
	message := "image must be in one of the following formats: PNG, JPEG (received: GIF)"
	analyzer := newTestAnalyzer(t, &stubProcessor{
		err: status.Error(codes.InvalidArgument, message),
	}, time.Second)

	_, err := analyzer.Analyze(context.Background(), []byte("gif bytes"), []string{"PNG", "JPEG"})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if got := apperrors.GetMessage(err); got != message {
		t.Errorf("Expected the processor's message to pass through, got %q", got)
	}
	if apperrors.GetStatusCode(err) != 400 {
		t.Errorf("Expected status 400, got %d", apperrors.GetStatusCode(err))
	}
}

func TestAnalyze_UnavailableBecomesBackendError(t *testing.T) {
	analyzer := newTestAnalyzer(t, &stubProcessor{
		err: status.Error(codes.Unavailable, "connection refused"),
	}, time.Second)

	_, err := analyzer.Analyze(context.Background(), []byte("image bytes"), []string{"PNG"})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeBackend) {
		t.Errorf("Expected a backend error, got %v", err)
	}
	if apperrors.GetStatusCode(err) != 502 {
		t.Errorf("Expected status 502, got %d", apperrors.GetStatusCode(err))
	}
}

func TestAnalyze_TimeoutFailsFast(t *testing.T) {
	analyzer := newTestAnalyzer(t, &stubProcessor{
		delay: 500 * time.Millisecond,
		resp:  &processingpb.AnalysisResponse{},
	}, 50*time.Millisecond)

	start := time.Now()
	_, err := analyzer.Analyze(context.Background(), []byte("image bytes"), []string{"PNG"})
	if err == nil {
		t.Fatal("Expected a timeout error")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeTimeout) {
		t.Errorf("Expected a timeout error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("Expected the call to fail fast, took %s", elapsed)
	}
}
