package classifier

import (
	"fmt"
	"math"
	"sort"
)

// Defaults applied when KNNTrainer fields are unset.
const (
	DefaultNeighbors  = 5
	DefaultMinkowskiP = 3.0
)

// KNNTrainer fits a KNN classifier.
type KNNTrainer struct {
	// Neighbors is k; values <= 0 use DefaultNeighbors.
	Neighbors int
	// P is the Minkowski exponent; values <= 0 use DefaultMinkowskiP.
	P float64
}

// KNN is an immutable nearest-neighbour model.
type KNN struct {
	k    int
	p    float64
	dim  int
	min  []float64
	span []float64
	x    [][]float64
	y    []int
}

// Fit copies and scales the training rows. The returned model never aliases x or y.
func (t KNNTrainer) Fit(x [][]float64, y []int) (Classifier, error) {
	if len(x) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("features and labels size mismatch: %d vs %d", len(x), len(y))
	}
	k := t.Neighbors
	if k <= 0 {
		k = DefaultNeighbors
	}
	if k > len(x) {
		k = len(x)
	}
	p := t.P
	if p <= 0 {
		p = DefaultMinkowskiP
	}
	dim := len(x[0])
	if dim == 0 {
		return nil, fmt.Errorf("training rows have no features")
	}
	m := &KNN{
		k:    k,
		p:    p,
		dim:  dim,
		min:  make([]float64, dim),
		span: make([]float64, dim),
		x:    make([][]float64, len(x)),
		y:    append([]int(nil), y...),
	}
	hi := make([]float64, dim)
	for j := 0; j < dim; j++ {
		m.min[j] = math.Inf(1)
		hi[j] = math.Inf(-1)
	}
	for i, row := range x {
		if len(row) != dim {
			return nil, &DimensionError{Row: i, Got: len(row), Want: dim}
		}
		for j, v := range row {
			if v < m.min[j] {
				m.min[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}
	for j := 0; j < dim; j++ {
		m.span[j] = hi[j] - m.min[j]
		if m.span[j] == 0 {
			m.span[j] = 1
		}
	}
	for i, row := range x {
		m.x[i] = m.scale(row)
	}
	return m, nil
}

func (m *KNN) scale(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - m.min[j]) / m.span[j]
	}
	return out
}

// distance is the Minkowski distance without the final root; ranking is unaffected.
func (m *KNN) distance(a, b []float64) float64 {
	var sum float64
	for j := range a {
		sum += math.Pow(math.Abs(a[j]-b[j]), m.p)
	}
	return sum
}

// Predict labels each row by majority vote of its k nearest training rows.
// Ties go to the label reached first in distance order.
func (m *KNN) Predict(batch [][]float64) ([]int, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}
	out := make([]int, len(batch))
	idx := make([]int, len(m.x))
	dist := make([]float64, len(m.x))
	for r, row := range batch {
		if len(row) != m.dim {
			return nil, &DimensionError{Row: r, Got: len(row), Want: m.dim}
		}
		q := m.scale(row)
		for i := range m.x {
			idx[i] = i
			dist[i] = m.distance(q, m.x[i])
		}
		sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })
		out[r] = m.vote(idx[:m.k])
	}
	return out, nil
}

func (m *KNN) vote(nearest []int) int {
	counts := make(map[int]int, len(nearest))
	best := 0
	for _, i := range nearest {
		counts[m.y[i]]++
		if counts[m.y[i]] > best {
			best = counts[m.y[i]]
		}
	}
	for _, i := range nearest {
		if counts[m.y[i]] == best {
			return m.y[i]
		}
	}
	return m.y[nearest[0]]
}

// Neighbors returns the effective k.
func (m *KNN) Neighbors() int { return m.k }
