package equipment

import (
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

// ItemPrice is a non-negative amount of in-game currency
type ItemPrice struct {
	amount int
}

// PriceOfAmount creates a price, rejecting negative amounts
func PriceOfAmount(amount int) (ItemPrice, error) {
	if amount < 0 {
		return ItemPrice{}, errors.InvalidArgumentf("price cannot be negative: %d", amount).
			WithMeta("amount", amount)
	}
	return ItemPrice{amount: amount}, nil
}

// MustPrice creates a price and panics on a negative amount
func MustPrice(amount int) ItemPrice {
	p, err := PriceOfAmount(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// Amount returns the price amount
func (p ItemPrice) Amount() int {
	return p.amount
}
