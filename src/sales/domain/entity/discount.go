package entity

import "github.com/shopspring/decimal"

// MaxItemQuantity cantidad máxima de unidades idénticas permitidas por item
const MaxItemQuantity = 20

// DiscountTier umbral de cantidad con su descuento asociado
type DiscountTier struct {
	MinQuantity int
	Discount    decimal.Decimal
}

// discountTiers tabla ordenada de mayor a menor umbral; gana el primer umbral alcanzado
var discountTiers = []DiscountTier{
	{MinQuantity: 10, Discount: decimal.NewFromFloat(0.20)},
	{MinQuantity: 4, Discount: decimal.NewFromFloat(0.10)},
	{MinQuantity: 0, Discount: decimal.Zero},
}

// DiscountForQuantity retorna el descuento que corresponde a la cantidad
// según la tabla de tiers (10+ → 20%, 4-9 → 10%, menos de 4 → sin descuento)
func DiscountForQuantity(quantity int) decimal.Decimal {
	for _, tier := range discountTiers {
		if quantity >= tier.MinQuantity {
			return tier.Discount
		}
	}
	return decimal.Zero
}
