package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-image-intensity/internal/config"
	apperrors "go-image-intensity/internal/errors"
	"go-image-intensity/internal/logger"
	"go-image-intensity/internal/service"
	"go-image-intensity/pkg/models"
)

// uploadFieldName is the multipart form field clients must use.
const uploadFieldName = "image"

func NewHandler(svc service.IntensityService, cfg *config.Config) http.Handler {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(),
		requestSizeLimiter(cfg.MaxUploadBytes),
	)

	r.GET("/", uploadPage)
	r.GET("/health", healthCheck)
	r.POST("/intensity", analyzeIntensity(svc, cfg))
	r.NoRoute(notFound)

	return r
}

func analyzeIntensity(svc service.IntensityService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		file, header, err := c.Request.FormFile(uploadFieldName)
		if err != nil {
			if isBodyTooLarge(err) {
				respondError(c, apperrors.NewPayloadTooLargeError(fmt.Sprintf(
					"file too large, maximum size allowed is %d bytes", cfg.MaxUploadBytes), err))
				return
			}
			respondError(c, apperrors.NewValidationError(
				"no image file provided, upload a file with key 'image'", err))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			if isBodyTooLarge(err) {
				respondError(c, apperrors.NewPayloadTooLargeError(fmt.Sprintf(
					"file too large, maximum size allowed is %d bytes", cfg.MaxUploadBytes), err))
				return
			}
			respondError(c, apperrors.NewInternalError("failed to read uploaded file", err))
			return
		}
		if len(data) == 0 {
			respondError(c, apperrors.NewValidationError("empty file uploaded", nil))
			return
		}

		result, cacheStatus, err := svc.AnalyzeUpload(c.Request.Context(), data)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Header("X-Cache", string(cacheStatus))
		c.JSON(http.StatusOK, models.IntensityResponse{
			AverageIntensity: result.AverageIntensity,
			Filename:         header.Filename,
			ImageSize:        [2]int{result.Width, result.Height},
			OriginalMode:     result.OriginalMode,
			PixelCount:       result.PixelCount,
			DurationMS:       time.Since(start).Milliseconds(),
			ImageSizeBytes:   len(data),
			RequestID:        requestIDFrom(c),
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "available",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:     "endpoint not found",
		RequestID: requestIDFrom(c),
	})
}

// Middleware and helper functions

const requestIDKey = "request_id"

// requestID assigns every request a fresh UUID (honoring a caller-supplied
// X-Request-ID) and echoes it in the response header. The ID flows through
// every log line and response body produced for the request.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger emits one structured summary line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestIDFrom(c),
			"cache":       c.Writer.Header().Get("X-Cache"),
			"ip":          c.ClientIP(),
		}).Info("Request completed")
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func respondError(c *gin.Context, err error) {
	code := apperrors.GetStatusCode(err)

	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"request_id":  requestIDFrom(c),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:     apperrors.GetMessage(err),
		RequestID: requestIDFrom(c),
	})
}
