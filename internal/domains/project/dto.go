package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/parse"
)

type CreateRequest struct {
	Title       string `form:"title"`
	Goal        string `form:"goal"`
	Icon        string `form:"icon"`
	Description string `form:"description"`
	Gradient    string `form:"gradient"`
	Order       *int   `form:"order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 200).Error("title must be 2-200 characters"),
		),
		validation.Field(&r.Goal,
			validation.Required.Error("goal is required"),
		),
		validation.Field(&r.Icon,
			validation.Required.Error("icon is required"),
			validation.In(Icons...).Error("unknown icon"),
		),
	)
}

// ParseDescription wraps a bare string as a single paragraph.
func (r CreateRequest) ParseDescription() []string {
	return parse.Paragraphs(r.Description)
}

type UpdateRequest struct {
	Title       string `form:"title"`
	Goal        string `form:"goal"`
	Icon        string `form:"icon"`
	Description string `form:"description"`
	Gradient    string `form:"gradient"`
	Order       *int   `form:"order"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != "", validation.Length(2, 200).Error("title must be 2-200 characters")),
		),
		validation.Field(&r.Icon,
			validation.When(r.Icon != "", validation.In(Icons...).Error("unknown icon")),
		),
	)
}

func (r UpdateRequest) ParseDescription() []string {
	return parse.Paragraphs(r.Description)
}

type ListFilter struct {
	ActiveOnly bool
	Page       pagination.Params
}
