package backend

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "go-image-intensity/internal/errors"
	"go-image-intensity/pkg/models"
	"go-image-intensity/pkg/processingpb"
)

// GRPCAnalyzer invokes the remote image processor over gRPC. Each call gets a
// bounded timeout; no retries are performed, a failed attempt surfaces
// immediately so transient backend unavailability stays visible.
type GRPCAnalyzer struct {
	client  processingpb.ImageProcessorClient
	timeout time.Duration
}

func NewGRPCAnalyzer(conn grpc.ClientConnInterface, timeout time.Duration) *GRPCAnalyzer {
	return &GRPCAnalyzer{
		client:  processingpb.NewImageProcessorClient(conn),
		timeout: timeout,
	}
}

func (a *GRPCAnalyzer) Analyze(ctx context.Context, imageData []byte, allowedFormats []string) (*models.AnalysisResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.AnalyzeImage(callCtx, &processingpb.AnalysisRequest{
		ImageData:      imageData,
		AllowedFormats: allowedFormats,
	})
	if err != nil {
		return nil, mapStatusError(err)
	}

	return &models.AnalysisResult{
		AverageIntensity: resp.GetAverageIntensity(),
		Width:            int(resp.GetWidth()),
		Height:           int(resp.GetHeight()),
		OriginalMode:     resp.GetOriginalMode(),
		PixelCount:       resp.GetPixelCount(),
	}, nil
}

// mapStatusError translates gRPC status codes into the application error
// taxonomy. The processor reports rejected images as InvalidArgument with a
// client-ready message, which passes through verbatim.
func mapStatusError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return apperrors.NewBackendError("image analysis failed", err)
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return apperrors.NewValidationError(st.Message(), err)
	case codes.DeadlineExceeded:
		return apperrors.NewTimeoutError("image analysis timed out", err)
	case codes.Unavailable:
		return apperrors.NewBackendError("image processor unavailable", err)
	default:
		return apperrors.NewBackendError("image analysis failed", err)
	}
}
