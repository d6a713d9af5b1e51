package sales

import (
	"time"

	"gorm.io/datatypes"
)

// Rows below are owned by the evidence-extraction subsystem; this service only reads them.

type PainPointCategory struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;uniqueIndex" json:"name"`
	DisplayName string    `gorm:"column:display_name;not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (PainPointCategory) TableName() string { return "pain_point_categories" }

type PainPointEvidence struct {
	ID                  int64    `gorm:"primaryKey" json:"id"`
	ContactSubmissionID int64    `gorm:"column:contact_submission_id;not null;index" json:"contact_submission_id"`
	PainPointCategoryID *int64   `gorm:"column:pain_point_category_id;index" json:"pain_point_category_id,omitempty"`
	SourceExcerpt       string   `gorm:"column:source_excerpt" json:"source_excerpt"`
	ConfidenceScore     float64  `gorm:"column:confidence_score;not null;default:0;index" json:"confidence_score"`
	MonetaryIndicator   *float64 `gorm:"column:monetary_indicator" json:"monetary_indicator,omitempty"`
	MonetaryContext     *string  `gorm:"column:monetary_context" json:"monetary_context,omitempty"`

	Category *PainPointCategory `gorm:"foreignKey:PainPointCategoryID" json:"pain_point_categories,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (PainPointEvidence) TableName() string { return "pain_point_evidence" }

type ValueReport struct {
	ID                  int64          `gorm:"primaryKey" json:"id"`
	ContactSubmissionID *int64         `gorm:"column:contact_submission_id;index" json:"contact_submission_id,omitempty"`
	Title               string         `gorm:"column:title" json:"title"`
	TotalAnnualValue    *float64       `gorm:"column:total_annual_value" json:"total_annual_value,omitempty"`
	Calculations        datatypes.JSON `gorm:"column:calculations;type:jsonb" json:"calculations,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (ValueReport) TableName() string { return "value_reports" }
