package services

import (
	"hiretrack-backend/domain/core/entities"
)

// FilterCriteria narrows the graph to the nodes a view wants to show.
// All predicates are AND-combined; there is no OR/NOT composition.
type FilterCriteria struct {
	// Status keeps only persons in that stage; empty keeps all.
	Status entities.Status
	// Starred, when true, keeps only starred persons.
	Starred bool
	// Team keeps only persons on that team, matched exactly and
	// case-sensitively; empty keeps all.
	Team string
}

// IsZero reports whether no predicate is active
func (c FilterCriteria) IsZero() bool {
	return c.Status == "" && !c.Starred && c.Team == ""
}

// Matches applies the AND-combined predicates to one person
func (c FilterCriteria) Matches(p entities.Person) bool {
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.Starred && !p.Starred {
		return false
	}
	if c.Team != "" && p.Team != c.Team {
		return false
	}
	return true
}

// VisibleGraph is the pure filter over the full graph: it returns the persons
// matching the criteria and the links whose endpoints are both visible.
// Dangling links, including links into deleted persons still present in
// storage, fall out of the visible set here without being cleaned up.
func VisibleGraph(nodes []entities.Person, links []entities.Link, c FilterCriteria) ([]entities.Person, []entities.Link) {
	visible := make([]entities.Person, 0, len(nodes))
	visibleIDs := make(map[string]struct{}, len(nodes))
	for _, p := range nodes {
		if c.Matches(p) {
			visible = append(visible, p)
			visibleIDs[p.ID] = struct{}{}
		}
	}

	visibleLinks := make([]entities.Link, 0, len(links))
	for _, l := range links {
		if _, ok := visibleIDs[l.Source]; !ok {
			continue
		}
		if _, ok := visibleIDs[l.Target]; !ok {
			continue
		}
		visibleLinks = append(visibleLinks, l)
	}

	return visible, visibleLinks
}
