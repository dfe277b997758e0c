package model

// Region - одна из пяти зон доставки.
type Region string

const (
	RegionNCR        Region = "NCR"
	RegionNorthLuzon Region = "NORTH LUZON"
	RegionSouthLuzon Region = "SOUTH LUZON"
	RegionVisayas    Region = "VISAYAS"
	RegionMindanao   Region = "MINDANAO"
)

// Regions перечисляет все допустимые зоны.
var Regions = []Region{RegionNCR, RegionNorthLuzon, RegionSouthLuzon, RegionVisayas, RegionMindanao}

// Valid сообщает, входит ли зона в перечисление.
func (r Region) Valid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}
