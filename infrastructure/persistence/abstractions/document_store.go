package abstractions

import (
	"context"

	"hiretrack-backend/domain/core/aggregates"
)

// DocumentStore is the persistence gateway for the candidate graph. The
// contract is whole-document replace: Load returns the entire stored
// document and Save overwrites it entirely. There are no partial updates,
// no versioning, and no conflict detection; concurrent writers are
// last-writer-wins at document granularity.
type DocumentStore interface {
	// Load returns the stored document, or an empty document when nothing
	// has been saved yet.
	Load(ctx context.Context) (*aggregates.Document, error)

	// Save replaces the stored document wholesale.
	Save(ctx context.Context, doc *aggregates.Document) error
}
