package detection

import (
	"errors"
	"fmt"
)

// ErrConfidenceRange is returned for a confidence outside [0,1].
var ErrConfidenceRange = errors.New("confidence must be between 0 and 1")

// ErrEmptyImage is returned when a request carries no image payload.
var ErrEmptyImage = errors.New("no image data provided")

// ServiceError means the external detector was unreachable or answered
// with an error. Distinct from caller errors so handlers can map it to 502.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("detection service: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// DecodeError means image bytes could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// CropError means a pixel rectangle is unusable: non-positive size, or no
// overlap at all with the image.
type CropError struct {
	Rect   PixelRect
	Reason string
}

func (e *CropError) Error() string {
	return fmt.Sprintf("crop rect (%.1f,%.1f %.1fx%.1f): %s",
		e.Rect.X, e.Rect.Y, e.Rect.Width, e.Rect.Height, e.Reason)
}
