package admin

import (
	"context"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/appstate"
	"github.com/prakan/go-content-admin/internal/di"
	"github.com/prakan/go-content-admin/internal/form"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/listview"
	"github.com/prakan/go-content-admin/pkg/interfaces"

	"github.com/prakan/go-content-admin/domain"
)

// FormController exports the draft form controller contract.
type FormController = form.Controller

// FormMode exports the form session mode.
type FormMode = form.Mode

// FormPhase exports the form state machine position.
type FormPhase = form.Phase

// ListView exports the paginated list view-model.
type ListView = listview.View

// ListRow exports one display row of the list view.
type ListRow = listview.Row

// Gateway exports the REST client.
type Gateway = gateway.Client

// ContentPage exports one fetched page of summaries.
type ContentPage = gateway.ContentPage

// PageMeta exports the paging metadata block.
type PageMeta = gateway.PageMeta

// AppState exports the persisted client-local UI state.
type AppState = appstate.State

// Exported form constants.
const (
	FormModeCreate = form.ModeCreate
	FormModeEdit   = form.ModeEdit

	FormPhaseIdle       = form.PhaseIdle
	FormPhaseValidating = form.PhaseValidating
	FormPhaseSubmitting = form.PhaseSubmitting
)

// Module is the top level admin engine façade.
type Module struct {
	container *di.Container
}

// New constructs an admin module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Gateway returns the configured REST client.
func (m *Module) Gateway() *Gateway {
	return m.container.Gateway()
}

// List returns a fresh paginated view over the content summaries, sized per
// the list configuration.
func (m *Module) List() *ListView {
	return listview.NewView(
		m.container.ListService(),
		listview.WithPageSize(m.container.Config.List.PageSize),
	)
}

// AppState returns the persisted client-local UI state. Call Load on it once
// at startup.
func (m *Module) AppState() *AppState {
	return m.container.AppState()
}

// NewCreateForm starts a create session for the category.
func (m *Module) NewCreateForm(category domain.Category) (*FormController, error) {
	return form.NewCreate(category, m.container.Gateway(), m.formOptions()...)
}

// NewEditForm loads the record behind a summary and starts an edit session
// over it.
func (m *Module) NewEditForm(ctx context.Context, contentID string) (*FormController, error) {
	record, err := m.container.Gateway().GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	return form.NewEdit(record, m.container.Gateway(), m.formOptions()...)
}

// NewEditFormFromRecord starts an edit session over an already fetched record.
func (m *Module) NewEditFormFromRecord(record content.Record) (*FormController, error) {
	return form.NewEdit(record, m.container.Gateway(), m.formOptions()...)
}

// LoggerProvider exposes the configured logger provider, which may be nil.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

func (m *Module) formOptions() []form.Option {
	return []form.Option{form.WithLoggerProvider(m.container.LoggerProvider())}
}
