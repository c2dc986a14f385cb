package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hiretrack-backend/domain/core/aggregates"
	"hiretrack-backend/domain/core/entities"
	"hiretrack-backend/infrastructure/persistence/jsonfile"
	pkgerrors "hiretrack-backend/pkg/errors"
	"hiretrack-backend/pkg/observability"
)

func newTestService(t *testing.T) *DocumentService {
	t.Helper()
	store := jsonfile.NewDocumentStore(filepath.Join(t.TempDir(), "graph.json"), zap.NewNop())
	return NewDocumentService(store, zap.NewNop(), observability.NewCollector("test"))
}

func TestDocumentService_AddPersonPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	person, err := svc.AddPerson(ctx, aggregates.NewPersonInput{Name: "Ada", Team: "Eng"}, "")
	require.NoError(t, err)

	// A fresh read-modify-write cycle sees the saved person.
	doc, err := svc.GetDocument(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, person.ID, doc.Nodes[0].ID)
}

func TestDocumentService_AddPersonEmptyNameDoesNotPersist(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddPerson(ctx, aggregates.NewPersonInput{Name: ""}, "")
	assert.True(t, pkgerrors.IsValidation(err))

	doc, err := svc.GetDocument(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes)
}

func TestDocumentService_MutationsAreReadModifyWrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	parent, err := svc.AddPerson(ctx, aggregates.NewPersonInput{Name: "Ada"}, "")
	require.NoError(t, err)
	child, err := svc.AddChildPerson(ctx, parent.ID, aggregates.NewPersonInput{Name: "Grace"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePerson(ctx, parent.ID))

	doc, err := svc.GetDocument(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, child.ID, doc.Nodes[0].ID)
	assert.Empty(t, doc.Links, "cascade removed the parent-child link")
}

func TestDocumentService_UpdateMissingPerson(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdatePerson(context.Background(), entities.Person{
		ID:     "missing",
		Name:   "Ghost",
		Status: entities.StatusTodo,
	})

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDocumentService_MovePersonPersistsPosition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	person, err := svc.AddPerson(ctx, aggregates.NewPersonInput{Name: "Ada"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.MovePerson(ctx, person.ID, 55, 66))

	doc, err := svc.GetDocument(ctx)
	require.NoError(t, err)
	got, ok := doc.FindPerson(person.ID)
	require.True(t, ok)
	require.True(t, got.HasStoredPosition())
	assert.Equal(t, 55.0, *got.X)
	assert.Equal(t, 66.0, *got.Y)
}

func TestDocumentService_ReplaceDocumentRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc := &aggregates.Document{
		Nodes: []entities.Person{{ID: "1", Name: "Ada", Status: entities.StatusCEO}},
		Links: []entities.Link{},
	}
	require.NoError(t, svc.ReplaceDocument(ctx, doc))

	loaded, err := svc.GetDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Nodes, loaded.Nodes)
	assert.Equal(t, doc.Links, loaded.Links)
}
