package serpclean

import "context"

// RunArchive persists cleaning runs for later inspection.
type RunArchive interface {
	// SaveRun stores a cleaned result set keyed by its run ID.
	SaveRun(ctx context.Context, set *CleanedResultSet) error

	// FindRunByID retrieves a previously saved run.
	// Returns ENOTFOUND if no run with that ID exists.
	FindRunByID(ctx context.Context, runID string) (*CleanedResultSet, error)
}
