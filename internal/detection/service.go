package detection

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"log"
	"sync"

	"excheck/internal/catalog"
)

// ProductFinder resolves a detected tag against the catalog. An unknown or
// empty tag resolves to (nil, nil), not an error.
type ProductFinder interface {
	Find(ctx context.Context, name string) (*catalog.Product, error)
}

// Service runs the detect → filter → enrich pipeline for one image.
// It is stateless; every collaborator is injected.
type Service struct {
	client  Client
	catalog ProductFinder
	workers int
}

func NewService(client Client, finder ProductFinder, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{client: client, catalog: finder, workers: workers}
}

// enrichment holds one prediction's crop and lookup outcome. The two slots
// fail independently; neither aborts the batch.
type enrichment struct {
	imageData []byte
	imageErr  error
	product   *catalog.Product
	lookupErr error
}

// Predict calls the detector, drops low-confidence predictions, then crops
// each surviving region and joins it with the catalog concurrently. The
// result list matches the filtered predictions in length and order.
func (s *Service) Predict(ctx context.Context, imageBytes []byte, confidence float64) ([]EnrichedResult, error) {
	if len(imageBytes) == 0 {
		return nil, ErrEmptyImage
	}
	if err := ValidateConfidence(confidence); err != nil {
		return nil, err
	}

	predictions, err := s.client.Detect(ctx, imageBytes)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}

	filtered := Filter(predictions, confidence)
	if len(filtered) == 0 {
		return []EnrichedResult{}, nil
	}

	// The image must be measurable before any region can be projected.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	outcomes := s.enrichAll(ctx, imageBytes, cfg.Width, cfg.Height, filtered)

	results := make([]EnrichedResult, len(filtered))
	for i, p := range filtered {
		out := outcomes[i]
		if out.imageErr != nil {
			log.Printf("crop failed tag=%q: %v", p.TagName, out.imageErr)
		}
		if out.lookupErr != nil {
			log.Printf("catalog lookup failed tag=%q: %v", p.TagName, out.lookupErr)
		}

		results[i] = EnrichedResult{
			TagName:     p.TagName,
			Probability: p.Probability,
			BoundingBox: p.BoundingBox,
			ProductInfo: out.product,
		}
		if out.imageErr == nil {
			results[i].Image = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(out.imageData)
		}
	}
	return results, nil
}

// enrichAll fans the per-prediction work out over a bounded worker pool and
// waits for every slot to be filled.
func (s *Service) enrichAll(ctx context.Context, imageBytes []byte, width, height int, filtered []Prediction) []enrichment {
	outcomes := make([]enrichment, len(filtered))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, p := range filtered {
		wg.Add(1)
		go func(i int, p Prediction) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// Crop and lookup for one prediction run side by side.
			done := make(chan struct{})
			go func() {
				defer close(done)
				outcomes[i].product, outcomes[i].lookupErr = s.catalog.Find(ctx, p.TagName)
			}()

			rect := p.BoundingBox.PixelRect(width, height)
			outcomes[i].imageData, outcomes[i].imageErr = Crop(imageBytes, rect)
			<-done
		}(i, p)
	}
	wg.Wait()

	return outcomes
}
