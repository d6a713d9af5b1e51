package normalization

import (
	"strconv"
	"strings"
	"unicode"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

// Catalog maps whichever catalog shape the caller sent into OfferItems. A non-empty
// content list wins over the legacy product list.
func Catalog(products []types.ProductWithRole, content []types.ContentWithRole) []types.OfferItem {
	if len(content) > 0 {
		out := make([]types.OfferItem, 0, len(content))
		for _, c := range content {
			out = append(out, ContentOffer(c))
		}
		return out
	}
	out := make([]types.OfferItem, 0, len(products))
	for _, p := range products {
		out = append(out, ProductOffer(p))
	}
	return out
}

func ProductOffer(p types.ProductWithRole) types.OfferItem {
	item := types.OfferItem{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Type:         p.Type,
		Price:        p.Price,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
	if p.OfferRole != nil {
		item.OfferRole = *p.OfferRole
	}
	applyRoleFields(&item, p.RoleFields)
	return item
}

func ContentOffer(c types.ContentWithRole) types.OfferItem {
	item := types.OfferItem{
		ID:           ContentID(c.ContentID),
		Title:        c.Title,
		Description:  c.Description,
		Type:         c.ContentType,
		Price:        c.Price,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
	if c.OfferRole != nil {
		item.OfferRole = *c.OfferRole
	}
	applyRoleFields(&item, c.RoleFields)
	return item
}

// ContentID reads the leading integer of a content identifier ("42-intro" is 42).
// Identifiers without one, or out of range, map to 0.
func ContentID(raw string) int64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func applyRoleFields(item *types.OfferItem, rf types.RoleFields) {
	item.DreamOutcomeDescription = rf.DreamOutcomeDescription
	item.LikelihoodMultiplier = rf.LikelihoodMultiplier
	item.TimeReduction = rf.TimeReduction
	item.EffortReduction = rf.EffortReduction
	item.RoleRetailPrice = rf.RoleRetailPrice
	item.OfferPrice = rf.OfferPrice
	item.PerceivedValue = rf.PerceivedValue
	item.BonusName = rf.BonusName
	item.BonusDescription = rf.BonusDescription
}
