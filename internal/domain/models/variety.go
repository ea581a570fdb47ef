package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeasurementUnit describes how a cloth variety is measured and sold.
type MeasurementUnit string

const (
	UnitPieces MeasurementUnit = "pieces"
	UnitMeters MeasurementUnit = "meters"
	UnitYards  MeasurementUnit = "yards"
)

// IsLength reports whether the unit represents a continuous length rather
// than a piece count. A sale of a length-based variety counts as one item
// regardless of its numeric quantity.
func (u MeasurementUnit) IsLength() bool {
	return u == UnitMeters || u == UnitYards
}

// Valid reports whether the unit is one of the known measurement units.
func (u MeasurementUnit) Valid() bool {
	switch u {
	case UnitPieces, UnitMeters, UnitYards:
		return true
	}
	return false
}

// Variety is a catalog item (fabric type) sold and stocked by the shop.
type Variety struct {
	ID              int
	Name            string
	Description     string
	MeasurementUnit MeasurementUnit
	StandardLength  decimal.Decimal
	DefaultCost     decimal.Decimal
	CreatedAt       time.Time
}

// VarietyIndex builds a lookup from variety id to variety.
func VarietyIndex(varieties []Variety) map[int]Variety {
	idx := make(map[int]Variety, len(varieties))
	for _, v := range varieties {
		idx[v.ID] = v
	}
	return idx
}
