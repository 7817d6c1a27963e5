package classifier

import (
	"fmt"
	"strings"
)

// Residues lists the 20 standard amino acids in encoding order.
const Residues = "ACDEFGHIKLMNPQRSTVWY"

// SequenceDim is the width of an encoded sequence: one frequency per residue plus length.
const SequenceDim = len(Residues) + 1

// LengthFeature is the index of the sequence length in an encoded vector.
const LengthFeature = len(Residues)

// ResidueFeature returns the feature index for residue r, or -1.
func ResidueFeature(r byte) int {
	return strings.IndexByte(Residues, upper(r))
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// EncodeSequence maps seq to its residue composition (case-insensitive) and
// length. Non-residue bytes count toward length only.
func EncodeSequence(seq string) []float64 {
	out := make([]float64, SequenceDim)
	if len(seq) == 0 {
		return out
	}
	for i := 0; i < len(seq); i++ {
		if j := ResidueFeature(seq[i]); j >= 0 {
			out[j]++
		}
	}
	n := float64(len(seq))
	for j := 0; j < len(Residues); j++ {
		out[j] /= n
	}
	out[LengthFeature] = n
	return out
}

// Op is a rule comparison.
type Op int

const (
	OpGreater Op = iota
	OpLessEqual
)

// Rule assigns Label when row[Feature] compares to Threshold by Op.
type Rule struct {
	Feature   int
	Op        Op
	Threshold float64
	Label     int
}

func (r Rule) matches(row []float64) bool {
	if r.Feature >= len(row) {
		return false
	}
	v := row[r.Feature]
	if r.Op == OpLessEqual {
		return v <= r.Threshold
	}
	return v > r.Threshold
}

// RuleClassifier applies rules in order; the first match wins.
type RuleClassifier struct {
	rules        []Rule
	defaultLabel int
}

// NewRuleClassifier validates and copies rules.
func NewRuleClassifier(rules []Rule, defaultLabel int) (*RuleClassifier, error) {
	for i, r := range rules {
		if r.Feature < 0 {
			return nil, fmt.Errorf("rule %d: negative feature index %d", i, r.Feature)
		}
		if r.Op != OpGreater && r.Op != OpLessEqual {
			return nil, fmt.Errorf("rule %d: unknown op %d", i, r.Op)
		}
	}
	return &RuleClassifier{rules: append([]Rule(nil), rules...), defaultLabel: defaultLabel}, nil
}

// NewStaticRules builds the fixed sequence model served on /predict-ps.
func NewStaticRules() *RuleClassifier {
	c, _ := NewRuleClassifier([]Rule{
		{Feature: ResidueFeature('C'), Op: OpGreater, Threshold: 0.08, Label: 2},
		{Feature: ResidueFeature('K'), Op: OpGreater, Threshold: 0.10, Label: 1},
		{Feature: ResidueFeature('E'), Op: OpGreater, Threshold: 0.10, Label: 1},
	}, 0)
	return c
}

// Predict labels each row by the first matching rule, else the default label.
func (c *RuleClassifier) Predict(batch [][]float64) ([]int, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}
	out := make([]int, len(batch))
	for i, row := range batch {
		out[i] = c.defaultLabel
		for _, r := range c.rules {
			if r.matches(row) {
				out[i] = r.Label
				break
			}
		}
	}
	return out, nil
}
