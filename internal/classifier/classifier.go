package classifier

import (
	"errors"
	"fmt"
)

// Classifier predicts one integer label per feature row.
// Implementations must be safe for concurrent Predict calls once constructed.
type Classifier interface {
	Predict(batch [][]float64) ([]int, error)
}

// Trainer builds a Classifier from a feature matrix and parallel labels.
type Trainer interface {
	Fit(x [][]float64, y []int) (Classifier, error)
}

// Func adapts a plain function to Classifier.
type Func func(batch [][]float64) ([]int, error)

func (f Func) Predict(batch [][]float64) ([]int, error) { return f(batch) }

var (
	// ErrEmptyTrainingSet is returned when Fit receives no rows.
	ErrEmptyTrainingSet = errors.New("empty training set")
	// ErrEmptyBatch is returned when Predict receives no rows.
	ErrEmptyBatch = errors.New("empty prediction batch")
)

// DimensionError reports a row whose width does not match the model.
type DimensionError struct {
	Row  int
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("row %d has %d features, want %d", e.Row, e.Got, e.Want)
}

// IsDimension reports whether err is a DimensionError.
func IsDimension(err error) bool {
	var e *DimensionError
	return errors.As(err, &e)
}
