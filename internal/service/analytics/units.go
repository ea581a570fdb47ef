package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

var one = decimal.NewFromInt(1)

// ItemCount normalizes a sold quantity into an item count. Length-based
// units (meters, yards) count as a single item per sale regardless of the
// measured length; piece-based units count the raw quantity.
func ItemCount(quantity decimal.Decimal, unit models.MeasurementUnit) decimal.Decimal {
	if unit.IsLength() {
		return one
	}
	return quantity
}

// saleUnit resolves the measurement unit for a sale, preferring the nested
// variety payload and falling back to the catalog index. Unknown varieties
// default to piece counting.
func saleUnit(s models.Sale, varieties map[int]models.Variety) models.MeasurementUnit {
	if s.Variety != nil {
		return s.Variety.MeasurementUnit
	}
	if v, ok := varieties[s.VarietyID]; ok {
		return v.MeasurementUnit
	}
	return models.UnitPieces
}

// saleVarietyName resolves the display name for a sale's variety.
func saleVarietyName(s models.Sale, varieties map[int]models.Variety) string {
	if s.Variety != nil && s.Variety.Name != "" {
		return s.Variety.Name
	}
	if v, ok := varieties[s.VarietyID]; ok {
		return v.Name
	}
	return "Unknown"
}
