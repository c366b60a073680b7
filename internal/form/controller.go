package form

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/prakan/go-content-admin/content"
	contentscmd "github.com/prakan/go-content-admin/internal/commands/contents"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/internal/payload"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

// Mode distinguishes create and edit sessions.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Phase is the controller's submit state machine position.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
)

// Sender is the network boundary used on submit. The gateway client satisfies
// it; tests swap in fakes.
type Sender interface {
	CreateContent(ctx context.Context, category domain.Category, p *payload.Payload) error
	UpdateContent(ctx context.Context, category domain.Category, id string, p *payload.Payload) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithLoggerProvider wires structured logging for form lifecycle events.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Controller) {
		c.logger = logging.FormLogger(provider)
	}
}

// Controller owns a single draft and its dirty set. It mirrors a UI event
// loop: all methods must be called from one goroutine, and Submit gates
// re-entry with the submitting phase rather than a lock. Mutations run through
// the content command handlers so every submit carries the shared command
// concerns (validation, timeout, logging, error tagging).
type Controller struct {
	mode     Mode
	phase    Phase
	draft    content.Draft
	original content.Record
	dirty    payload.Dirty
	errs     validation.Errors
	create   *contentscmd.CreateContentHandler
	update   *contentscmd.UpdateContentHandler
	logger   interfaces.Logger
}

// NewCreate starts a create session with the category's default draft.
func NewCreate(category domain.Category, sender Sender, opts ...Option) (*Controller, error) {
	if !category.Valid() {
		return nil, &content.UnknownCategoryError{Category: string(category)}
	}
	c := &Controller{
		mode:   ModeCreate,
		phase:  PhaseIdle,
		draft:  content.DefaultDraft(category),
		dirty:  payload.Dirty{},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bindHandlers(sender)
	return c, nil
}

// NewEdit starts an edit session from a persisted record. The record's remote
// image paths become existing image values, so only explicit swaps later read
// as changes.
func NewEdit(record content.Record, sender Sender, opts ...Option) (*Controller, error) {
	draft, err := content.DraftFromRecord(record)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		mode:     ModeEdit,
		phase:    PhaseIdle,
		draft:    draft,
		original: record,
		dirty:    payload.Dirty{},
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bindHandlers(sender)
	return c, nil
}

// bindHandlers runs after options so the handlers share the resolved logger.
func (c *Controller) bindHandlers(sender Sender) {
	c.create = contentscmd.NewCreateContentHandler(sender, c.logger)
	c.update = contentscmd.NewUpdateContentHandler(sender, c.logger)
}

// Mode returns the session mode.
func (c *Controller) Mode() Mode { return c.mode }

// Phase returns the current state machine position.
func (c *Controller) Phase() Phase { return c.phase }

// Draft returns a deep copy of the current draft.
func (c *Controller) Draft() content.Draft { return c.draft.Clone() }

// IsDirty reports whether the field changed since the draft loaded.
func (c *Controller) IsDirty(field content.Field) bool { return c.dirty[field] }

// Errors returns the field errors from the most recent validation, nil when
// the last validation passed or none ran yet.
func (c *Controller) Errors() validation.Errors {
	if len(c.errs) == 0 {
		return nil
	}
	out := make(validation.Errors, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// ChangeCategory replaces the whole draft with the new category's default.
// Only create sessions may switch; the replacement is a full reset so no field
// from the previous shape survives.
func (c *Controller) ChangeCategory(category domain.Category) error {
	if c.mode != ModeCreate {
		return ErrCategoryImmutable
	}
	if !category.Valid() {
		return &content.UnknownCategoryError{Category: string(category)}
	}
	c.draft = content.DefaultDraft(category)
	c.dirty = payload.Dirty{}
	c.errs = nil
	c.logger.Debug("form.category.changed", "category", string(category))
	return nil
}

// SetTitle updates the shared title field.
func (c *Controller) SetTitle(title string) {
	c.draft.Title = title
	c.dirty[content.FieldTitle] = true
}

// SetStatus updates the shared status field.
func (c *Controller) SetStatus(status domain.Status) {
	c.draft.Status = status
	c.dirty[content.FieldStatus] = true
}

// SetEffectiveFrom updates the lower bound of the effective range and eagerly
// re-validates the pair, since either end can invalidate the other.
func (c *Controller) SetEffectiveFrom(ts content.Timestamp) {
	c.draft.EffectiveFrom = ts
	c.dirty[content.FieldEffectiveFrom] = true
	c.revalidatePair("effectivePeriod")
}

// SetEffectiveTo updates the upper bound of the effective range and eagerly
// re-validates the pair.
func (c *Controller) SetEffectiveTo(ts content.Timestamp) {
	c.draft.EffectiveTo = ts
	c.dirty[content.FieldEffectiveTo] = true
	c.revalidatePair("effectivePeriod")
}

// SetCoverHyperLink updates the cover link on banner and promotion drafts.
func (c *Controller) SetCoverHyperLink(link string) error {
	switch {
	case c.draft.Banner != nil:
		c.draft.Banner.CoverHyperLink = link
	case c.draft.Promotion != nil:
		c.draft.Promotion.CoverHyperLink = link
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldCoverHyperLink] = true
	return nil
}

// SwapCoverImage replaces the cover image with freshly chosen bytes.
func (c *Controller) SwapCoverImage(filename string, data []byte) error {
	img := content.PendingImage(filename, data)
	switch {
	case c.draft.Banner != nil:
		c.draft.Banner.CoverImage = img
	case c.draft.Promotion != nil:
		c.draft.Promotion.CoverImage = img
	case c.draft.Insurance != nil:
		c.draft.Insurance.CoverImage = img
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldCoverImage] = true
	return nil
}

// SwapIconImage replaces the insurance icon image.
func (c *Controller) SwapIconImage(filename string, data []byte) error {
	if c.draft.Insurance == nil {
		return ErrFieldMismatch
	}
	c.draft.Insurance.IconImage = content.PendingImage(filename, data)
	c.dirty[content.FieldIconImage] = true
	return nil
}

// SwapImage replaces the suit-insurance image.
func (c *Controller) SwapImage(filename string, data []byte) error {
	if c.draft.SuitInsurance == nil {
		return ErrFieldMismatch
	}
	c.draft.SuitInsurance.Image = content.PendingImage(filename, data)
	c.dirty[content.FieldImage] = true
	return nil
}

// SetTitleTh updates the Thai title on bilingual drafts.
func (c *Controller) SetTitleTh(value string) error {
	switch {
	case c.draft.Promotion != nil:
		c.draft.Promotion.TitleTh = value
	case c.draft.Insurance != nil:
		c.draft.Insurance.TitleTh = value
	case c.draft.SuitInsurance != nil:
		c.draft.SuitInsurance.TitleTh = value
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldTitleTh] = true
	return nil
}

// SetTitleEn updates the English title on bilingual drafts.
func (c *Controller) SetTitleEn(value string) error {
	switch {
	case c.draft.Promotion != nil:
		c.draft.Promotion.TitleEn = value
	case c.draft.Insurance != nil:
		c.draft.Insurance.TitleEn = value
	case c.draft.SuitInsurance != nil:
		c.draft.SuitInsurance.TitleEn = value
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldTitleEn] = true
	return nil
}

// SetDescriptionTh updates the Thai description on promotion and insurance drafts.
func (c *Controller) SetDescriptionTh(value string) error {
	switch {
	case c.draft.Promotion != nil:
		c.draft.Promotion.DescriptionTh = value
	case c.draft.Insurance != nil:
		c.draft.Insurance.DescriptionTh = value
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldDescriptionTh] = true
	return nil
}

// SetDescriptionEn updates the English description on promotion and insurance drafts.
func (c *Controller) SetDescriptionEn(value string) error {
	switch {
	case c.draft.Promotion != nil:
		c.draft.Promotion.DescriptionEn = value
	case c.draft.Insurance != nil:
		c.draft.Insurance.DescriptionEn = value
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldDescriptionEn] = true
	return nil
}

// SetStartDate updates the campaign start and eagerly re-validates the pair.
func (c *Controller) SetStartDate(ts content.Timestamp) error {
	switch {
	case c.draft.Promotion != nil:
		c.draft.Promotion.StartDate = ts
	case c.draft.Insurance != nil:
		c.draft.Insurance.StartDate = ts
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldStartDate] = true
	c.revalidatePair("datePeriod")
	return nil
}

// SetEndDate updates the campaign end and eagerly re-validates the pair.
func (c *Controller) SetEndDate(ts content.Timestamp) error {
	switch {
	case c.draft.Promotion != nil:
		c.draft.Promotion.EndDate = ts
	case c.draft.Insurance != nil:
		c.draft.Insurance.EndDate = ts
	default:
		return ErrFieldMismatch
	}
	c.dirty[content.FieldEndDate] = true
	c.revalidatePair("datePeriod")
	return nil
}

// AddItem appends an empty banner content row and returns its local key.
func (c *Controller) AddItem() (uuid.UUID, error) {
	if c.draft.Banner == nil {
		return uuid.Nil, ErrFieldMismatch
	}
	item := content.NewBannerItemDraft()
	c.draft.Banner.Items = append(c.draft.Banner.Items, item)
	c.dirty[content.FieldContents] = true
	return item.Key, nil
}

// RemoveItem drops a banner content row by its local key. Rows with a stable
// server id end up in the remove group of the next update payload.
func (c *Controller) RemoveItem(key uuid.UUID) error {
	_, idx, err := c.findItem(key)
	if err != nil {
		return err
	}
	c.draft.Banner.Items = append(c.draft.Banner.Items[:idx], c.draft.Banner.Items[idx+1:]...)
	c.dirty[content.FieldContents] = true
	return nil
}

// SwapItemImage replaces a banner row's image with freshly chosen bytes.
func (c *Controller) SwapItemImage(key uuid.UUID, filename string, data []byte) error {
	item, _, err := c.findItem(key)
	if err != nil {
		return err
	}
	item.Image = content.PendingImage(filename, data)
	c.dirty[content.FieldContents] = true
	return nil
}

// SetItemHyperLink updates a banner row's link.
func (c *Controller) SetItemHyperLink(key uuid.UUID, link string) error {
	item, _, err := c.findItem(key)
	if err != nil {
		return err
	}
	item.HyperLink = link
	c.dirty[content.FieldContents] = true
	return nil
}

// Validate runs the category schema against the draft and records the result.
func (c *Controller) Validate() error {
	c.phase = PhaseValidating
	defer func() { c.phase = PhaseIdle }()

	err := content.ValidateDraft(c.draft)
	if err == nil {
		c.errs = nil
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		c.errs = fieldErrs
	}
	return err
}

// Submit validates and, when the draft is clean, runs the matching mutation
// command. Invalid drafts never reach the network. A failed submit leaves the
// draft and dirty set intact so the user can retry as-is.
func (c *Controller) Submit(ctx context.Context) error {
	if c.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	if err := c.Validate(); err != nil {
		c.logger.Debug("form.submit.invalid", "fields", len(c.errs))
		return err
	}

	c.phase = PhaseSubmitting
	defer func() { c.phase = PhaseIdle }()

	logger := logging.WithFields(c.logger, map[string]any{
		"mode":     string(c.mode),
		"category": string(c.draft.Category),
	})

	var err error
	switch c.mode {
	case ModeCreate:
		err = c.create.Execute(ctx, contentscmd.CreateContentCommand{
			Draft: c.draft.Clone(),
		})
	case ModeEdit:
		err = c.update.Execute(ctx, contentscmd.UpdateContentCommand{
			Original: c.original,
			Draft:    c.draft.Clone(),
			Dirty:    c.cloneDirty(),
		})
	}
	if err != nil {
		logger.Error("form.submit.failed", "error", err)
		return err
	}

	c.dirty = payload.Dirty{}
	logger.Info("form.submit.success")
	return nil
}

func (c *Controller) cloneDirty() payload.Dirty {
	out := make(payload.Dirty, len(c.dirty))
	for field, set := range c.dirty {
		out[field] = set
	}
	return out
}

// revalidatePair refreshes the eager error slot for a paired date range while
// leaving every other field's errors to the next full validation.
func (c *Controller) revalidatePair(key string) {
	err := content.ValidateDraft(c.draft)
	if c.errs == nil {
		c.errs = validation.Errors{}
	}
	delete(c.errs, key)
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		if pairErr, ok := fieldErrs[key]; ok {
			c.errs[key] = pairErr
		}
	}
	if len(c.errs) == 0 {
		c.errs = nil
	}
}

func (c *Controller) findItem(key uuid.UUID) (*content.BannerItemDraft, int, error) {
	if c.draft.Banner == nil {
		return nil, 0, ErrFieldMismatch
	}
	for i := range c.draft.Banner.Items {
		if c.draft.Banner.Items[i].Key == key {
			return &c.draft.Banner.Items[i], i, nil
		}
	}
	return nil, 0, ErrUnknownItem
}
