package aggregates

import (
	"github.com/google/uuid"

	"hiretrack-backend/domain/core/entities"
	pkgerrors "hiretrack-backend/pkg/errors"
)

// Document is the aggregate root for the whole candidate graph: every person
// and every link between them. It is loaded and replaced wholesale on each
// mutation; there are no partial updates at the persistence boundary.
type Document struct {
	Nodes []entities.Person `json:"nodes"`
	Links []entities.Link   `json:"links"`
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		Nodes: []entities.Person{},
		Links: []entities.Link{},
	}
}

// NewPersonInput carries the caller-supplied fields for a new person.
// Notes always start empty; the quick-edit flow fills them in later.
type NewPersonInput struct {
	Name    string
	Status  entities.Status
	Starred bool
	Team    string
}

// AddPerson appends a new person and, when connectTo is non-empty, a link
// from connectTo to the new person. An empty name aborts the operation with
// a validation error and the document unchanged.
//
// Ids are generated, not derived from the node count: the historical
// count+1 scheme collides after a delete-then-add sequence.
func (d *Document) AddPerson(input NewPersonInput, connectTo string) (entities.Person, error) {
	if input.Name == "" {
		return entities.Person{}, pkgerrors.NewValidationError("person name cannot be empty")
	}

	status := input.Status
	if status == "" {
		status = entities.StatusTodo
	}

	person := entities.Person{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Status:  status,
		Starred: input.Starred,
		Team:    input.Team,
		Notes:   "",
	}
	if err := person.Validate(); err != nil {
		return entities.Person{}, err
	}

	d.Nodes = append(d.Nodes, person)
	if connectTo != "" {
		d.Links = append(d.Links, entities.Link{Source: connectTo, Target: person.ID})
	}
	return person, nil
}

// AddChildPerson appends a new person with no team and always links it to
// the parent. Missing parent or empty child name abort with the document
// unchanged.
func (d *Document) AddChildPerson(parentID string, input NewPersonInput) (entities.Person, error) {
	if _, ok := d.FindPerson(parentID); !ok {
		return entities.Person{}, pkgerrors.NewNotFoundError("parent person")
	}

	input.Team = ""
	return d.AddPerson(input, parentID)
}

// UpdatePerson replaces the person matching edited.ID in place
func (d *Document) UpdatePerson(edited entities.Person) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range d.Nodes {
		if d.Nodes[i].ID == edited.ID {
			d.Nodes[i] = edited
			return nil
		}
	}
	return pkgerrors.NewNotFoundError("person")
}

// MovePerson records a manual display position for the person, which from
// then on takes precedence over any computed layout placement
func (d *Document) MovePerson(id string, x, y float64) error {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			d.Nodes[i].SetPosition(x, y)
			return nil
		}
	}
	return pkgerrors.NewNotFoundError("person")
}

// DeletePerson removes the person and every link referencing its id as
// source or target
func (d *Document) DeletePerson(id string) error {
	idx := -1
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return pkgerrors.NewNotFoundError("person")
	}

	d.Nodes = append(d.Nodes[:idx], d.Nodes[idx+1:]...)

	kept := d.Links[:0]
	for _, link := range d.Links {
		if !link.References(id) {
			kept = append(kept, link)
		}
	}
	d.Links = kept
	return nil
}

// FindPerson returns the person with the given id
func (d *Document) FindPerson(id string) (entities.Person, bool) {
	for _, p := range d.Nodes {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Person{}, false
}

// Normalize ensures the slices are non-nil so the document always marshals
// as {"nodes":[],"links":[]} rather than nulls
func (d *Document) Normalize() {
	if d.Nodes == nil {
		d.Nodes = []entities.Person{}
	}
	if d.Links == nil {
		d.Links = []entities.Link{}
	}
}
