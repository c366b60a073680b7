package contentscmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/payload"
)

const (
	createContentMessageType = "admin.contents.create"
	updateContentMessageType = "admin.contents.update"
	deleteContentMessageType = "admin.contents.delete"
)

// CreateContentCommand submits a complete draft as a new record.
type CreateContentCommand struct {
	Draft content.Draft
}

// Type implements command.Message.
func (CreateContentCommand) Type() string { return createContentMessageType }

// Validate satisfies command.Message.
func (c CreateContentCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Draft, validation.By(validDraft)),
	)
}

// UpdateContentCommand submits the dirty slice of an edited draft.
type UpdateContentCommand struct {
	Original content.Record
	Draft    content.Draft
	Dirty    payload.Dirty
}

// Type implements command.Message.
func (UpdateContentCommand) Type() string { return updateContentMessageType }

// Validate satisfies command.Message.
func (c UpdateContentCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Draft, validation.By(validDraft), validation.By(requireDraftID)),
	)
}

// DeleteContentCommand removes a record by its category-specific record id.
type DeleteContentCommand struct {
	Category domain.Category
	RecordID string
}

// Type implements command.Message.
func (DeleteContentCommand) Type() string { return deleteContentMessageType }

// Validate satisfies command.Message.
func (c DeleteContentCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Category, validation.By(validCategory)),
		validation.Field(&c.RecordID, validation.Required),
	)
}

func validDraft(value any) error {
	draft, ok := value.(content.Draft)
	if !ok {
		return content.ErrDraftCategorySkew
	}
	if !draft.Category.Valid() {
		return &content.UnknownCategoryError{Category: string(draft.Category)}
	}
	if !draft.Consistent() {
		return content.ErrDraftCategorySkew
	}
	return content.ValidateDraft(draft)
}

func requireDraftID(value any) error {
	draft, ok := value.(content.Draft)
	if !ok || draft.ID == "" {
		return content.ErrRecordIDRequired
	}
	return nil
}

func validCategory(value any) error {
	category, ok := value.(domain.Category)
	if !ok || !category.Valid() {
		return content.ErrUnknownCategory
	}
	return nil
}
