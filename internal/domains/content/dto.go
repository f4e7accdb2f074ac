package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/parse"
)

// CreateRequest carries the non-file multipart fields. Subtopics and Tags
// arrive encoded; decode policies live in Parse* (see shared/parse).
type CreateRequest struct {
	Topic     string `form:"topic"`
	Subtopics string `form:"subtopics"`
	Tags      string `form:"tags"`
	Status    string `form:"status"`

	CreatorID *uuid.UUID `form:"-"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Topic,
			validation.Required.Error("topic is required"),
			validation.Length(2, 200).Error("topic must be 2-200 characters"),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusDraft, StatusPublished, StatusArchived).
					Error("status must be draft, published or archived"),
			),
		),
	)
}

// ParseSubtopics rejects malformed JSON rather than guessing.
func (r CreateRequest) ParseSubtopics() ([]Subtopic, error) {
	return parse.ObjectList[Subtopic]("subtopics", r.Subtopics)
}

// ParseTags falls back to comma-splitting per the observed client behavior.
func (r CreateRequest) ParseTags() []string {
	return parse.StringList(r.Tags)
}

// UpdateRequest patches fields; empty strings mean "not sent" because
// multipart forms cannot carry null. RemoveImages lists storage ids.
type UpdateRequest struct {
	Topic        string `form:"topic"`
	Subtopics    string `form:"subtopics"`
	Tags         string `form:"tags"`
	Status       string `form:"status"`
	RemoveImages string `form:"removeImages"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Topic,
			validation.When(r.Topic != "", validation.Length(2, 200).Error("topic must be 2-200 characters")),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusDraft, StatusPublished, StatusArchived).
					Error("status must be draft, published or archived"),
			),
		),
	)
}

func (r UpdateRequest) ParseSubtopics() ([]Subtopic, error) {
	return parse.ObjectList[Subtopic]("subtopics", r.Subtopics)
}

func (r UpdateRequest) ParseTags() []string {
	return parse.StringList(r.Tags)
}

func (r UpdateRequest) ParseRemoveImages() []string {
	return parse.StringList(r.RemoveImages)
}

// CaptionPatch maps storage ids to their new captions.
type CaptionPatch struct {
	Captions map[string]string `json:"captions"`
}

func (r CaptionPatch) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Captions, validation.Required.Error("captions map is required")),
	)
}

// ListFilter is the list-endpoint contract for content.
type ListFilter struct {
	Status string
	Tags   []string
	Search string
	Page   pagination.Params
}
