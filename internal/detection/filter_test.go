package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		wantErr    bool
	}{
		{name: "zero is allowed", confidence: 0},
		{name: "one is allowed", confidence: 1},
		{name: "mid range", confidence: 0.5},
		{name: "negative rejected", confidence: -0.01, wantErr: true},
		{name: "above one rejected", confidence: 1.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfidence(tt.confidence)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfidenceRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFilter(t *testing.T) {
	preds := []Prediction{
		{TagName: "apple", Probability: 0.9},
		{TagName: "banana", Probability: 0.5},
		{TagName: "soda", Probability: 0.51},
		{TagName: "", Probability: 0.3},
	}

	t.Run("strictly above threshold, order kept", func(t *testing.T) {
		got := Filter(preds, 0.5)

		// 0.5 equals the threshold and must be dropped.
		assert.Len(t, got, 2)
		assert.Equal(t, "apple", got[0].TagName)
		assert.Equal(t, "soda", got[1].TagName)
	})

	t.Run("zero threshold keeps everything above zero", func(t *testing.T) {
		got := Filter(preds, 0)
		assert.Len(t, got, 4)
	})

	t.Run("threshold of one drops everything", func(t *testing.T) {
		got := Filter(preds, 1)
		assert.Empty(t, got)
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := Filter(nil, 0.5)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = Filter(preds, 0.5)
		assert.Equal(t, "banana", preds[1].TagName)
		assert.Len(t, preds, 4)
	})
}

func TestFilterSpecScenario(t *testing.T) {
	preds := []Prediction{
		{TagName: "apple", Probability: 0.9, BoundingBox: BoundingBox{Left: 0, Top: 0, Width: 0.5, Height: 0.5}},
		{TagName: "", Probability: 0.3, BoundingBox: BoundingBox{Left: 0.5, Top: 0.5, Width: 0.5, Height: 0.5}},
	}

	got := Filter(preds, 0.5)
	assert.Len(t, got, 1)
	assert.Equal(t, "apple", got[0].TagName)

	rect := got[0].BoundingBox.PixelRect(1000, 1000)
	assert.Equal(t, PixelRect{X: 0, Y: 0, Width: 500, Height: 500}, rect)
}
