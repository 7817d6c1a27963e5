package types

// Slot names a model slot held by the gateway.
type Slot string

const (
	SlotTabular  Slot = "tabular"
	SlotSequence Slot = "sequence"
)

// Tabular feature names in vector order.
var TabularFeatures = []string{"preg", "plas", "pres", "skin", "insu", "mass", "pedi", "age"}
