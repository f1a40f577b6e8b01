package season

import "context"

// Source loads the season table from its backing store. Implementations are
// read-only.
type Source interface {
	Load(ctx context.Context) (*Table, error)
}
