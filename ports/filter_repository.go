package ports

import (
	"context"

	"goattrition/domain/core"
	"goattrition/domain/filter"
)

// FilterRepository defines the interface for persisting saved filter specs
type FilterRepository interface {
	Save(ctx context.Context, f *filter.SavedFilter) error
	GetByID(ctx context.Context, id core.FilterID) (*filter.SavedFilter, error)
	GetByName(ctx context.Context, name string) (*filter.SavedFilter, error)
	List(ctx context.Context) ([]*filter.SavedFilter, error)
	Delete(ctx context.Context, id core.FilterID) error
}
