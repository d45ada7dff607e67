package ports

import (
	"context"

	"goattrition/domain/table"
)

// Loader defines the interface for turning a data source into a dataset
type Loader interface {
	// Load reads a source into an immutable dataset. It fails when the
	// source is unreadable or not tabular; it never retries.
	Load(ctx context.Context, source string) (*table.Dataset, error)
}
