package appstate

import (
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Setting is one persisted UI setting row.
type Setting struct {
	bun.BaseModel `bun:"table:app_settings,alias:s"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// NewSettingRepository creates a repository for Setting entities keyed by the
// setting name.
func NewSettingRepository(db *bun.DB) repository.Repository[*Setting] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Setting]{
		NewRecord: func() *Setting { return &Setting{} },
		GetID: func(s *Setting) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Setting, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(s *Setting) string {
			return s.Key
		},
	})
}
