package models

// IntensityResponse is the JSON body returned for a successful upload.
// ImageSize is [width, height], matching the wire shape clients already
// depend on.
type IntensityResponse struct {
	AverageIntensity float64 `json:"average_intensity"`
	Filename         string  `json:"filename"`
	ImageSize        [2]int  `json:"image_size"`
	OriginalMode     string  `json:"original_mode"`
	PixelCount       int64   `json:"pixel_count"`
	DurationMS       int64   `json:"duration_ms"`
	ImageSizeBytes   int     `json:"image_size_bytes"`
	RequestID        string  `json:"request_id"`
}

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}
