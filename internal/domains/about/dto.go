package about

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/shared/pagination"
)

type CreateRequest struct {
	Hero       Hero             `json:"hero"`
	Vision     string           `json:"vision"`
	Mission    string           `json:"mission"`
	Objectives []string         `json:"objectives"`
	History    []HistorySection `json:"history"`
	Timeline   []TimelineEntry  `json:"timeline"`
	CTA        CTA              `json:"cta"`
	Version    string           `json:"version"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Vision, validation.Required.Error("vision is required")),
		validation.Field(&r.Mission, validation.Required.Error("mission is required")),
		validation.Field(&r.Version,
			validation.Required.Error("version is required"),
			validation.Length(1, 50).Error("version must be 1-50 characters"),
		),
	)
}

// UpdateRequest patches individual sections; nil pointers leave the stored
// value untouched.
type UpdateRequest struct {
	Hero       *Hero             `json:"hero"`
	Vision     *string           `json:"vision"`
	Mission    *string           `json:"mission"`
	Objectives *[]string         `json:"objectives"`
	History    *[]HistorySection `json:"history"`
	Timeline   *[]TimelineEntry  `json:"timeline"`
	CTA        *CTA              `json:"cta"`
	Version    *string           `json:"version"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Version,
			validation.Length(1, 50).Error("version must be 1-50 characters"),
		),
	)
}

type ListFilter struct {
	Page pagination.Params
}
