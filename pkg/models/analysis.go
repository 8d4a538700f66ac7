package models

// AnalysisResult is the outcome of a single intensity computation.
// It is immutable once produced and is the unit stored in the result cache,
// so identical uploads always deserialize to an identical value.
type AnalysisResult struct {
	AverageIntensity float64 `json:"average_intensity"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	OriginalMode     string  `json:"original_mode"`
	PixelCount       int64   `json:"pixel_count"`
}
