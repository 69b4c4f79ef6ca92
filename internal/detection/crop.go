package detection

import (
	"bytes"
	"image"
	"image/jpeg"
	"math"

	_ "image/png" // capture clients post PNG frames
)

// PixelRect projects the normalized box onto an image of the given pixel
// dimensions. No clamping happens here; rectangles may extend past the
// image edges.
func (b BoundingBox) PixelRect(imageWidth, imageHeight int) PixelRect {
	return PixelRect{
		X:      b.Left * float64(imageWidth),
		Y:      b.Top * float64(imageHeight),
		Width:  b.Width * float64(imageWidth),
		Height: b.Height * float64(imageHeight),
	}
}

const cropJPEGQuality = 85

// Crop extracts rect from imageBytes and re-encodes the region as JPEG.
// A rectangle partially past the image edges is clamped to the overlap;
// one with no overlap, or a non-positive size, is a *CropError.
func Crop(imageBytes []byte, rect PixelRect) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return cropImage(img, rect)
}

func cropImage(img image.Image, rect PixelRect) ([]byte, error) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, &CropError{Rect: rect, Reason: "non-positive size"}
	}

	region := image.Rect(
		int(math.Floor(rect.X)),
		int(math.Floor(rect.Y)),
		int(math.Ceil(rect.X+rect.Width)),
		int(math.Ceil(rect.Y+rect.Height)),
	)
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return nil, &CropError{Rect: rect, Reason: "outside image bounds"}
	}

	sub := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := 0; y < region.Dy(); y++ {
		for x := 0; x < region.Dx(); x++ {
			sub.Set(x, y, img.At(region.Min.X+x, region.Min.Y+y))
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, sub, &jpeg.Options{Quality: cropJPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
