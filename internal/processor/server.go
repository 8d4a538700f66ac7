package processor

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "go-image-intensity/internal/errors"
	"go-image-intensity/internal/intensity"
	"go-image-intensity/internal/logger"
	"go-image-intensity/pkg/processingpb"
)

// Server implements the ImageProcessor gRPC service by delegating to the
// intensity calculator. Rejected images surface as InvalidArgument so the
// gateway can answer with a 400 carrying the same message.
type Server struct {
	processingpb.UnimplementedImageProcessorServer
	calculator intensity.Calculator
}

func NewServer(calculator intensity.Calculator) *Server {
	return &Server{calculator: calculator}
}

func (s *Server) AnalyzeImage(ctx context.Context, req *processingpb.AnalysisRequest) (*processingpb.AnalysisResponse, error) {
	result, err := s.calculator.Calculate(req.GetImageData(), req.GetAllowedFormats())
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeValidation {
			logger.WithField("reason", appErr.Message).Warn("Rejected image")
			return nil, status.Error(codes.InvalidArgument, appErr.Message)
		}
		logger.WithError(err).Error("Image analysis failed")
		return nil, status.Error(codes.Internal, "image analysis failed")
	}

	logger.WithFields(logrus.Fields{
		"width":       result.Width,
		"height":      result.Height,
		"mode":        result.OriginalMode,
		"image_bytes": len(req.GetImageData()),
	}).Debug("Image analyzed")

	return &processingpb.AnalysisResponse{
		AverageIntensity: result.AverageIntensity,
		Width:            int32(result.Width),
		Height:           int32(result.Height),
		OriginalMode:     result.OriginalMode,
		PixelCount:       result.PixelCount,
	}, nil
}
