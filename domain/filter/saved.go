package filter

import (
	"time"

	"goattrition/domain/core"
)

// SavedFilter is a named filter specification persisted for reuse
type SavedFilter struct {
	ID        core.FilterID `json:"id"`
	Name      string        `json:"name"`
	Spec      Spec          `json:"spec"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewSavedFilter creates a saved filter with a fresh identifier
func NewSavedFilter(name string, spec Spec) *SavedFilter {
	now := time.Now()
	return &SavedFilter{
		ID:        core.FilterID(core.NewID()),
		Name:      name,
		Spec:      spec,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
