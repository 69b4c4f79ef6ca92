package detection

// ValidateConfidence rejects thresholds outside [0,1]. Out-of-range values
// are a caller error, never clamped.
func ValidateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return ErrConfidenceRange
	}
	return nil
}

// Filter keeps predictions whose probability is strictly above the
// threshold, in input order. A probability equal to the threshold is
// dropped.
func Filter(predictions []Prediction, confidence float64) []Prediction {
	filtered := make([]Prediction, 0, len(predictions))
	for _, p := range predictions {
		if p.Probability > confidence {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
