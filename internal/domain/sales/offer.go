package sales

// OfferRole classifies a catalog item's marketing function.
type OfferRole string

const (
	OfferRoleCoreOffer  OfferRole = "core_offer"
	OfferRoleBonus      OfferRole = "bonus"
	OfferRoleUpsell     OfferRole = "upsell"
	OfferRoleDownsell   OfferRole = "downsell"
	OfferRoleContinuity OfferRole = "continuity"
	OfferRoleLeadMagnet OfferRole = "lead_magnet"
	OfferRoleDecoy      OfferRole = "decoy"
	OfferRoleAnchor     OfferRole = "anchor"
)

// OfferItem is the one catalog shape the generator knows. Legacy product rows and newer
// content rows are both normalised into it before generation.
type OfferItem struct {
	ID          int64     `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string    `json:"type,omitempty" yaml:"type,omitempty"`
	Price       *float64  `json:"price,omitempty" yaml:"price,omitempty"`
	OfferRole   OfferRole `json:"offer_role,omitempty" yaml:"offer_role,omitempty"`

	DreamOutcomeDescription *string  `json:"dream_outcome_description,omitempty" yaml:"dream_outcome_description,omitempty"`
	LikelihoodMultiplier    *float64 `json:"likelihood_multiplier,omitempty" yaml:"likelihood_multiplier,omitempty"`
	TimeReduction           *float64 `json:"time_reduction,omitempty" yaml:"time_reduction,omitempty"`
	EffortReduction         *float64 `json:"effort_reduction,omitempty" yaml:"effort_reduction,omitempty"`
	RoleRetailPrice         *float64 `json:"role_retail_price,omitempty" yaml:"role_retail_price,omitempty"`
	OfferPrice              *float64 `json:"offer_price,omitempty" yaml:"offer_price,omitempty"`
	PerceivedValue          *float64 `json:"perceived_value,omitempty" yaml:"perceived_value,omitempty"`
	BonusName               *string  `json:"bonus_name,omitempty" yaml:"bonus_name,omitempty"`
	BonusDescription        *string  `json:"bonus_description,omitempty" yaml:"bonus_description,omitempty"`

	DisplayOrder int  `json:"display_order,omitempty" yaml:"display_order,omitempty"`
	IsActive     bool `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// ProductWithRole is the legacy catalog row shape accepted as availableProducts.
type ProductWithRole struct {
	ID           int64      `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Description  *string    `json:"description" yaml:"description"`
	Type         string     `json:"type" yaml:"type"`
	Price        *float64   `json:"price" yaml:"price"`
	FilePath     *string    `json:"file_path" yaml:"file_path"`
	ImageURL     *string    `json:"image_url" yaml:"image_url"`
	IsActive     bool       `json:"is_active" yaml:"is_active"`
	IsFeatured   bool       `json:"is_featured" yaml:"is_featured"`
	DisplayOrder int        `json:"display_order" yaml:"display_order"`
	RoleID       *string    `json:"role_id" yaml:"role_id"`
	OfferRole    *OfferRole `json:"offer_role" yaml:"offer_role"`
	RoleFields   `yaml:",inline"`
}

// ContentWithRole is the newer catalog row shape accepted as availableContent. Its
// identifier is a string and is parsed to an integer id during normalisation.
type ContentWithRole struct {
	ContentType  string     `json:"content_type" yaml:"content_type"`
	ContentID    string     `json:"content_id" yaml:"content_id"`
	Title        string     `json:"title" yaml:"title"`
	Description  *string    `json:"description" yaml:"description"`
	Subtype      *string    `json:"subtype" yaml:"subtype"`
	Price        *float64   `json:"price" yaml:"price"`
	ImageURL     *string    `json:"image_url" yaml:"image_url"`
	IsActive     bool       `json:"is_active" yaml:"is_active"`
	DisplayOrder int        `json:"display_order" yaml:"display_order"`
	RoleID       *string    `json:"role_id" yaml:"role_id"`
	OfferRole    *OfferRole `json:"offer_role" yaml:"offer_role"`
	RoleFields   `yaml:",inline"`
}

// RoleFields are the offer-role attributes shared by both catalog shapes.
type RoleFields struct {
	DreamOutcomeDescription *string  `json:"dream_outcome_description" yaml:"dream_outcome_description"`
	LikelihoodMultiplier    *float64 `json:"likelihood_multiplier" yaml:"likelihood_multiplier"`
	TimeReduction           *float64 `json:"time_reduction" yaml:"time_reduction"`
	EffortReduction         *float64 `json:"effort_reduction" yaml:"effort_reduction"`
	RoleRetailPrice         *float64 `json:"role_retail_price" yaml:"role_retail_price"`
	OfferPrice              *float64 `json:"offer_price" yaml:"offer_price"`
	PerceivedValue          *float64 `json:"perceived_value" yaml:"perceived_value"`
	BonusName               *string  `json:"bonus_name" yaml:"bonus_name"`
	BonusDescription        *string  `json:"bonus_description" yaml:"bonus_description"`
}
