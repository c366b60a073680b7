package contentscmd

import (
	"context"

	"github.com/prakan/go-content-admin/internal/commands"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/payload"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

// Creator posts a complete multipart payload for a new record.
type Creator interface {
	CreateContent(ctx context.Context, category domain.Category, p *payload.Payload) error
}

// Updater patches an existing record with a minimal multipart payload.
type Updater interface {
	UpdateContent(ctx context.Context, category domain.Category, id string, p *payload.Payload) error
}

// Deleter removes a record through the per-category endpoint.
type Deleter interface {
	DeleteContent(ctx context.Context, category domain.Category, id string) error
}

// Gateway is the full REST client surface the content commands need.
type Gateway interface {
	Creator
	Updater
	Deleter
}

// CreateContentHandler assembles and submits the full create payload.
type CreateContentHandler struct {
	inner *commands.Handler[CreateContentCommand]
}

// NewCreateContentHandler constructs a handler wired to the gateway.
func NewCreateContentHandler(gw Creator, logger interfaces.Logger, opts ...commands.HandlerOption[CreateContentCommand]) *CreateContentHandler {
	exec := func(ctx context.Context, msg CreateContentCommand) error {
		p, err := payload.BuildCreate(msg.Draft)
		if err != nil {
			return err
		}
		return gw.CreateContent(ctx, msg.Draft.Category, p)
	}

	handlerOpts := []commands.HandlerOption[CreateContentCommand]{
		commands.WithLogger[CreateContentCommand](logger),
		commands.WithOperation[CreateContentCommand]("contents.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateContentCommand].
func (h *CreateContentHandler) Execute(ctx context.Context, msg CreateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateContentHandler assembles and submits the minimal update payload.
type UpdateContentHandler struct {
	inner *commands.Handler[UpdateContentCommand]
}

// NewUpdateContentHandler constructs a handler wired to the gateway.
func NewUpdateContentHandler(gw Updater, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateContentCommand]) *UpdateContentHandler {
	exec := func(ctx context.Context, msg UpdateContentCommand) error {
		p, err := payload.BuildUpdate(msg.Original, msg.Draft, msg.Dirty)
		if err != nil {
			return err
		}
		return gw.UpdateContent(ctx, msg.Draft.Category, msg.Draft.ID, p)
	}

	handlerOpts := []commands.HandlerOption[UpdateContentCommand]{
		commands.WithLogger[UpdateContentCommand](logger),
		commands.WithOperation[UpdateContentCommand]("contents.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpdateContentCommand].
func (h *UpdateContentHandler) Execute(ctx context.Context, msg UpdateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteContentHandler removes a record through the per-category endpoint.
type DeleteContentHandler struct {
	inner *commands.Handler[DeleteContentCommand]
}

// NewDeleteContentHandler constructs a handler wired to the gateway.
func NewDeleteContentHandler(gw Deleter, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteContentCommand]) *DeleteContentHandler {
	exec := func(ctx context.Context, msg DeleteContentCommand) error {
		return gw.DeleteContent(ctx, msg.Category, msg.RecordID)
	}

	handlerOpts := []commands.HandlerOption[DeleteContentCommand]{
		commands.WithLogger[DeleteContentCommand](logger),
		commands.WithOperation[DeleteContentCommand]("contents.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeleteContentCommand].
func (h *DeleteContentHandler) Execute(ctx context.Context, msg DeleteContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
