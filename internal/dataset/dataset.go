// Package dataset loads the tabular training set served by the gateway.
//
// The built-in set is the Pima diabetes sample embedded at build time; a file
// on disk can replace it. Rows carry the eight tabular attributes followed by
// a class column. An optional header row is detected and skipped.
package dataset

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgtm-migrator/mecj-demo/internal/common/fsutil"
	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

//go:embed diabetes.csv
var embedded embed.FS

const embeddedName = "diabetes.csv"

// Dataset is a feature matrix with parallel labels. Treat as read-only.
type Dataset struct {
	X [][]float64
	Y []int
	// Classes maps non-numeric class tokens to their assigned label.
	Classes map[string]int
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Y) }

// Source opens the raw CSV bytes of a dataset.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type embeddedSource struct{}

// Embedded returns the dataset compiled into the binary.
func Embedded() Source { return embeddedSource{} }

func (embeddedSource) Name() string                 { return "embedded:" + embeddedName }
func (embeddedSource) Open() (io.ReadCloser, error) { return embedded.Open(embeddedName) }

type fileSource struct{ path string }

// File returns a Source reading path; a leading '~' is expanded.
func File(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return s.path }

func (s fileSource) Open() (io.ReadCloser, error) {
	p, err := fsutil.ExpandHome(s.path)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

// knownClasses fixes the label of the class tokens used by the embedded set.
var knownClasses = map[string]int{
	"tested_negative": 0,
	"tested_positive": 1,
}

var errNoRows = errors.New("dataset has no rows")

// Load opens src and parses it.
func Load(src Source) (*Dataset, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer rc.Close()
	ds, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Name(), err)
	}
	return ds, nil
}

// Parse reads CSV rows of len(types.TabularFeatures) numbers plus a class.
// Class tokens are integers, a known name, or otherwise numbered in order of
// first appearance after the known names.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(types.TabularFeatures) + 1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	ds := &Dataset{Classes: make(map[string]int)}
	next := len(knownClasses)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(types.TabularFeatures))
		bad := -1
		for j := range row {
			f, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil {
				bad = j
				break
			}
			row[j] = f
		}
		if bad >= 0 {
			if line == 1 && len(ds.Y) == 0 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: column %d: invalid number %q", line, bad+1, rec[bad])
		}
		token := strings.TrimSpace(rec[len(rec)-1])
		label, err := strconv.Atoi(token)
		if err != nil {
			l, ok := knownClasses[token]
			if !ok {
				l, ok = ds.Classes[token]
			}
			if !ok {
				if token == "" {
					return nil, fmt.Errorf("line %d: empty class", line)
				}
				l = next
				next++
			}
			ds.Classes[token] = l
			label = l
		}
		ds.X = append(ds.X, row)
		ds.Y = append(ds.Y, label)
	}
	if len(ds.Y) == 0 {
		return nil, errNoRows
	}
	return ds, nil
}
