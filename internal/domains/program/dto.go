package program

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/parse"
)

type CreateRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	ProgramType string `form:"programType"`
	Features    string `form:"features"`
	Status      string `form:"status"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 200).Error("title must be 2-200 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.ProgramType,
			validation.Required.Error("programType is required"),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusActive, StatusInactive).Error("status must be active or inactive"),
			),
		),
	)
}

// ParseFeatures falls back to comma-splitting like tag fields.
func (r CreateRequest) ParseFeatures() []string {
	return parse.StringList(r.Features)
}

type UpdateRequest struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	ProgramType  string `form:"programType"`
	Features     string `form:"features"`
	Status       string `form:"status"`
	RemoveImages string `form:"removeImages"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != "", validation.Length(2, 200).Error("title must be 2-200 characters")),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusActive, StatusInactive).Error("status must be active or inactive"),
			),
		),
	)
}

func (r UpdateRequest) ParseFeatures() []string {
	return parse.StringList(r.Features)
}

func (r UpdateRequest) ParseRemoveImages() []string {
	return parse.StringList(r.RemoveImages)
}

type ListFilter struct {
	ProgramType string
	Status      string
	Search      string
	Page        pagination.Params
}
