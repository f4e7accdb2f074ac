package gallery

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/parse"
)

type CreateRequest struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Category     string `form:"category"`
	Event        string `form:"event"`
	Location     string `form:"location"`
	Photographer string `form:"photographer"`
	Tags         string `form:"tags"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 200).Error("title must be 2-200 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(Categories...).Error("invalid category"),
		),
	)
}

func (r CreateRequest) ParseTags() []string {
	return parse.StringList(r.Tags)
}

type UpdateRequest struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Category     string `form:"category"`
	Event        string `form:"event"`
	Location     string `form:"location"`
	Photographer string `form:"photographer"`
	Tags         string `form:"tags"`
	RemoveImages string `form:"removeImages"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != "", validation.Length(2, 200).Error("title must be 2-200 characters")),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != "", validation.In(Categories...).Error("invalid category")),
		),
	)
}

func (r UpdateRequest) ParseTags() []string {
	return parse.StringList(r.Tags)
}

func (r UpdateRequest) ParseRemoveImages() []string {
	return parse.StringList(r.RemoveImages)
}

type ListFilter struct {
	Category string
	Tags     []string
	Search   string
	Page     pagination.Params
}
