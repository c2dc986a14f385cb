// Package jsonfile persists the candidate graph as one flat JSON document
// on local disk. The store keeps the historical whole-document replace
// contract: every save rewrites the file, every load reads it back in full.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"hiretrack-backend/domain/core/aggregates"
	pkgerrors "hiretrack-backend/pkg/errors"
)

// DocumentStore reads and replaces the graph document at a fixed file path.
// A process-local mutex serializes Load and Save; across processes the
// semantics stay last-writer-wins, which the single-user design accepts.
type DocumentStore struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewDocumentStore creates a store backed by the given file path
func NewDocumentStore(path string, logger *zap.Logger) *DocumentStore {
	return &DocumentStore{
		path:   path,
		logger: logger,
	}
}

// Load returns the stored document. A missing file yields an empty
// document; a present but malformed file is a storage error, surfaced
// rather than silently replaced.
func (s *DocumentStore) Load(ctx context.Context) (*aggregates.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return aggregates.NewDocument(), nil
		}
		return nil, pkgerrors.NewStorageError("load", err)
	}

	var doc aggregates.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("Stored document is malformed",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil, pkgerrors.NewStorageError("load", err)
	}

	doc.Normalize()
	return &doc, nil
}

// Save replaces the stored document wholesale. The write goes to a temp
// file in the same directory followed by a rename, so a crashed save never
// leaves a torn document behind.
func (s *DocumentStore) Save(ctx context.Context, doc *aggregates.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return pkgerrors.NewStorageError("save", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.NewStorageError("save", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return pkgerrors.NewStorageError("save", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return pkgerrors.NewStorageError("save", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return pkgerrors.NewStorageError("save", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return pkgerrors.NewStorageError("save", err)
	}

	s.logger.Debug("Document saved",
		zap.String("path", s.path),
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("links", len(doc.Links)),
	)
	return nil
}

// Path returns the backing file path
func (s *DocumentStore) Path() string {
	return s.path
}
