package models

import (
	"hvac-matcher/core/match"
	"hvac-matcher/core/unit"
	"hvac-matcher/core/utils"
)

// CatalogUnit represents the 'catalog_units' table: one orderable unit in
// the replacement catalog. Row order (by id) is the catalog insertion order
// the matcher uses as its final tie-break.
type CatalogUnit struct {
	ID             int     `gorm:"column:id;primaryKey"`
	Model          string  `gorm:"column:model"`
	Family         string  `gorm:"column:family"`
	SystemType     string  `gorm:"column:system_type"`
	Tons           float64 `gorm:"column:tons"`
	HeatingBTU     int     `gorm:"column:heating_btu"`
	ElectricHeatKW float64 `gorm:"column:electric_heat_kw"`
	Voltage        string  `gorm:"column:voltage"`
	Phase          int     `gorm:"column:phase"`
	Refrigerant    string  `gorm:"column:refrigerant"`
	Active         int     `gorm:"column:active"` // tinyint(1)
}

// TableName overrides the table name used by GORM.
func (CatalogUnit) TableName() string {
	return "catalog_units"
}

// ToEntry converts the database row to a matcher catalog entry.
func (c CatalogUnit) ToEntry() match.Entry {
	return match.Entry{
		Model:  c.Model,
		Family: c.Family,
		Spec: unit.Spec{
			Model:          c.Model,
			Family:         c.Family,
			Tons:           c.Tons,
			HeatingBTU:     c.HeatingBTU,
			ElectricHeatKW: c.ElectricHeatKW,
			Voltage:        c.Voltage,
			Phase:          c.Phase,
			SystemType:     unit.SystemType(c.SystemType),
			Refrigerant:    c.Refrigerant,
		},
	}
}

// CatalogDocument is the JSON catalog export kept in object storage.
type CatalogDocument struct {
	Units []DocumentUnit `json:"units"`
}

// DocumentUnit is one unit in the catalog export. The numeric fields are
// loosely typed because the exports come out of spreadsheets, where tonnage
// may arrive as "7.5" and phase as "3".
type DocumentUnit struct {
	Model          string `json:"model"`
	Family         string `json:"family"`
	SystemType     string `json:"system_type"`
	Tons           any    `json:"tons"`
	HeatingBTU     any    `json:"heating_btu"`
	ElectricHeatKW any    `json:"electric_heat_kw"`
	Voltage        any    `json:"voltage"`
	Phase          any    `json:"phase"`
	Refrigerant    string `json:"refrigerant"`
	Active         any    `json:"active"`
}

// ToCatalogUnit normalizes the loosely typed document unit into a database
// row. Units without an explicit active flag are treated as active.
func (d DocumentUnit) ToCatalogUnit() CatalogUnit {
	active := 1
	if d.Active != nil && !utils.ToBool(d.Active) {
		active = 0
	}
	voltage := ""
	if d.Voltage != nil {
		voltage = utils.ToString(d.Voltage)
	}
	return CatalogUnit{
		Model:          d.Model,
		Family:         d.Family,
		SystemType:     d.SystemType,
		Tons:           utils.ToFloat(d.Tons),
		HeatingBTU:     utils.ToInt(d.HeatingBTU),
		ElectricHeatKW: utils.ToFloat(d.ElectricHeatKW),
		Voltage:        voltage,
		Phase:          utils.ToInt(d.Phase),
		Refrigerant:    d.Refrigerant,
		Active:         active,
	}
}
