package detection

import "excheck/internal/catalog"

// BoundingBox locates a prediction within the source image.
// All fields are normalized to [0,1].
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Prediction is one candidate item reported by the detector.
type Prediction struct {
	TagName     string      `json:"tagName"`
	Probability float64     `json:"probability"`
	BoundingBox BoundingBox `json:"boundingBox"`
}

// PixelRect is a bounding box projected onto a concrete image size.
// Not clamped to the image bounds; the extractor handles overflow.
type PixelRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// EnrichedResult is one prediction joined with its cropped region and
// catalog entry. Image is a data URL, empty when the crop failed;
// ProductInfo is nil when the tag has no catalog entry.
type EnrichedResult struct {
	TagName     string           `json:"tagName"`
	Probability float64          `json:"probability"`
	BoundingBox BoundingBox      `json:"boundingBox"`
	Image       string           `json:"image,omitempty"`
	ProductInfo *catalog.Product `json:"productInfo"`
}
