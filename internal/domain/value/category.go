package value

import "strings"

// Category — класс актива сделки. Набор открыт: неизвестные категории
// допустимы и получают значения по умолчанию в таблицах оценки.
type Category string

const (
	CategoryRealEstate     Category = "real-estate"
	CategoryVehicles       Category = "vehicles"
	CategoryHeavyEquipment Category = "heavy-equipment"
	CategoryLuxuryItems    Category = "luxury-items"
	CategoryBusinessAssets Category = "business-assets"
	CategoryWholesale      Category = "wholesale"
)

func (c Category) String() string {
	return string(c)
}

// ParseCategory нормализует ввод: нижний регистр, без пробелов по краям.
func ParseCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}
