package offer

import (
	"math"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

// GrandSlamOffer is the packaged core offer with its bonuses and price framing.
type GrandSlamOffer struct {
	CoreOffer           *types.OfferItem  `json:"coreOffer"`
	Bonuses             []types.OfferItem `json:"bonuses"`
	Anchor              *types.OfferItem  `json:"anchor"`
	Decoy               *types.OfferItem  `json:"decoy"`
	TotalRetailValue    float64           `json:"totalRetailValue"`
	TotalPerceivedValue float64           `json:"totalPerceivedValue"`
	ValueScore          int               `json:"valueScore"`
	OfferPrice          float64           `json:"offerPrice"`
	Savings             float64           `json:"savings"`
	SavingsPercent      int               `json:"savingsPercent"`
}

// BuildGrandSlamOffer takes the first core offer, anchor and decoy and every bonus.
// Totals cover the core offer plus bonuses; the offer price is the core's.
func BuildGrandSlamOffer(items []types.OfferItem) GrandSlamOffer {
	out := GrandSlamOffer{Bonuses: []types.OfferItem{}}
	for i := range items {
		it := items[i]
		switch it.OfferRole {
		case types.OfferRoleCoreOffer:
			if out.CoreOffer == nil {
				out.CoreOffer = &it
			}
		case types.OfferRoleBonus:
			out.Bonuses = append(out.Bonuses, it)
		case types.OfferRoleAnchor:
			if out.Anchor == nil {
				out.Anchor = &it
			}
		case types.OfferRoleDecoy:
			if out.Decoy == nil {
				out.Decoy = &it
			}
		}
	}

	stack := make([]types.OfferItem, 0, len(out.Bonuses)+1)
	if out.CoreOffer != nil {
		stack = append(stack, *out.CoreOffer)
		out.OfferPrice = firstPositive(out.CoreOffer.OfferPrice, out.CoreOffer.Price)
	}
	stack = append(stack, out.Bonuses...)

	totals := StackValue(stack)
	out.TotalRetailValue = totals.TotalRetailValue
	out.TotalPerceivedValue = totals.TotalPerceivedValue
	out.ValueScore = totals.ValueScore

	out.Savings = out.TotalPerceivedValue - out.OfferPrice
	if out.TotalPerceivedValue > 0 {
		out.SavingsPercent = int(math.Round(out.Savings / out.TotalPerceivedValue * 100))
	}
	return out
}
