// Package features turns parsed query parameters into model inputs.
package features

import (
	"errors"
	"math"
	"strconv"

	"github.com/lgtm-migrator/mecj-demo/internal/query"
	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

// Vector is the fixed-schema tabular feature vector.
type Vector []float64

// SequenceParam is the query parameter carrying the biological sequence.
const SequenceParam = "seq"

var errNotFinite = errors.New("value is not finite")

// ExtractTabular builds the 8-value vector ordered as types.TabularFeatures.
// Extraction is all-or-nothing: the first missing or invalid parameter aborts it.
func ExtractTabular(q query.Map) (Vector, error) {
	vec := make(Vector, len(types.TabularFeatures))
	for i, name := range types.TabularFeatures {
		raw, ok := q.Lookup(name)
		if !ok {
			return nil, &MissingParameterError{Name: name}
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &InvalidNumberError{Name: name, Value: raw, Err: err}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &InvalidNumberError{Name: name, Value: raw, Err: errNotFinite}
		}
		vec[i] = f
	}
	return vec, nil
}

// ExtractSequence returns the raw seq parameter. An empty value is accepted.
func ExtractSequence(q query.Map) (string, error) {
	seq, ok := q.Lookup(SequenceParam)
	if !ok {
		return "", &MissingParameterError{Name: SequenceParam}
	}
	return seq, nil
}
