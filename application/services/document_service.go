package services

import (
	"context"

	"go.uber.org/zap"

	"hiretrack-backend/domain/core/aggregates"
	"hiretrack-backend/domain/core/entities"
	"hiretrack-backend/infrastructure/persistence/abstractions"
	pkgerrors "hiretrack-backend/pkg/errors"
	"hiretrack-backend/pkg/observability"
)

// DocumentService is the in-memory graph repository behind the API. Every
// mutation is a read-modify-write over the full document followed by a
// wholesale save; nothing is cached between requests, so a failed save
// never leaves the service ahead of storage.
type DocumentService struct {
	store   abstractions.DocumentStore
	logger  *zap.Logger
	metrics *observability.Collector
}

// NewDocumentService creates a document service
func NewDocumentService(
	store abstractions.DocumentStore,
	logger *zap.Logger,
	metrics *observability.Collector,
) *DocumentService {
	return &DocumentService{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// GetDocument returns the full stored document
func (s *DocumentService) GetDocument(ctx context.Context) (*aggregates.Document, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReplaceDocument overwrites the stored document entirely. This is the
// legacy SPA contract: whichever save lands last wins, with no merge.
func (s *DocumentService) ReplaceDocument(ctx context.Context, doc *aggregates.Document) error {
	return s.save(ctx, doc)
}

// AddPerson adds a person and optionally links it to an existing one
func (s *DocumentService) AddPerson(ctx context.Context, input aggregates.NewPersonInput, connectTo string) (entities.Person, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return entities.Person{}, err
	}

	person, err := doc.AddPerson(input, connectTo)
	if err != nil {
		return entities.Person{}, err
	}

	if err := s.save(ctx, doc); err != nil {
		return entities.Person{}, err
	}

	s.metrics.PersonsCreated.Inc()
	s.logger.Info("Person added",
		zap.String("personID", person.ID),
		zap.String("status", string(person.Status)),
		zap.String("team", person.Team),
		zap.Bool("connected", connectTo != ""),
	)
	return person, nil
}

// AddChildPerson adds a person linked to a parent, with no team
func (s *DocumentService) AddChildPerson(ctx context.Context, parentID string, input aggregates.NewPersonInput) (entities.Person, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return entities.Person{}, err
	}

	child, err := doc.AddChildPerson(parentID, input)
	if err != nil {
		return entities.Person{}, err
	}

	if err := s.save(ctx, doc); err != nil {
		return entities.Person{}, err
	}

	s.metrics.PersonsCreated.Inc()
	s.logger.Info("Child person added",
		zap.String("personID", child.ID),
		zap.String("parentID", parentID),
	)
	return child, nil
}

// UpdatePerson replaces the person with the matching id
func (s *DocumentService) UpdatePerson(ctx context.Context, edited entities.Person) (entities.Person, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return entities.Person{}, err
	}

	if err := doc.UpdatePerson(edited); err != nil {
		return entities.Person{}, err
	}

	if err := s.save(ctx, doc); err != nil {
		return entities.Person{}, err
	}

	s.logger.Info("Person updated", zap.String("personID", edited.ID))
	return edited, nil
}

// MovePerson records a manual display position for the person
func (s *DocumentService) MovePerson(ctx context.Context, id string, x, y float64) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := doc.MovePerson(id, x, y); err != nil {
		return err
	}

	if err := s.save(ctx, doc); err != nil {
		return err
	}

	s.logger.Debug("Person moved",
		zap.String("personID", id),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
	return nil
}

// DeletePerson removes the person and every link touching it
func (s *DocumentService) DeletePerson(ctx context.Context, id string) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := doc.DeletePerson(id); err != nil {
		return err
	}

	if err := s.save(ctx, doc); err != nil {
		return err
	}

	s.metrics.PersonsDeleted.Inc()
	s.logger.Info("Person deleted", zap.String("personID", id))
	return nil
}

func (s *DocumentService) load(ctx context.Context) (*aggregates.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		if pkgerrors.IsStorage(err) {
			s.metrics.StorageErrors.Inc()
		}
		s.logger.Error("Failed to load document", zap.Error(err))
		return nil, err
	}
	s.metrics.DocumentLoads.Inc()
	return doc, nil
}

func (s *DocumentService) save(ctx context.Context, doc *aggregates.Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		if pkgerrors.IsStorage(err) {
			s.metrics.StorageErrors.Inc()
		}
		s.logger.Error("Failed to save document", zap.Error(err))
		return err
	}
	s.metrics.DocumentSaves.Inc()
	return nil
}
