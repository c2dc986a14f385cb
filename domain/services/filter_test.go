package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack-backend/domain/core/entities"
)

func TestVisibleGraph_NoCriteriaKeepsEverything(t *testing.T) {
	nodes := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo},
		{ID: "2", Name: "B", Status: entities.StatusRejected, Team: "Eng"},
	}
	links := []entities.Link{{Source: "1", Target: "2"}}

	visNodes, visLinks := VisibleGraph(nodes, links, FilterCriteria{})

	assert.Len(t, visNodes, 2)
	assert.Len(t, visLinks, 1)
}

func TestVisibleGraph_PredicatesAreANDCombined(t *testing.T) {
	nodes := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusInterview, Starred: true, Team: "Eng"},
		{ID: "2", Name: "B", Status: entities.StatusInterview, Starred: false, Team: "Eng"},
		{ID: "3", Name: "C", Status: entities.StatusTodo, Starred: true, Team: "Eng"},
		{ID: "4", Name: "D", Status: entities.StatusInterview, Starred: true, Team: "Design"},
	}

	visNodes, _ := VisibleGraph(nodes, nil, FilterCriteria{
		Status:  entities.StatusInterview,
		Starred: true,
		Team:    "Eng",
	})

	require.Len(t, visNodes, 1)
	assert.Equal(t, "1", visNodes[0].ID)
}

func TestVisibleGraph_TeamMatchIsCaseSensitive(t *testing.T) {
	nodes := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "eng"},
	}

	visNodes, _ := VisibleGraph(nodes, nil, FilterCriteria{Team: "Eng"})

	assert.Empty(t, visNodes)
}

func TestVisibleGraph_LinksNeedBothEndpointsVisible(t *testing.T) {
	nodes := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusInterview},
		{ID: "2", Name: "B", Status: entities.StatusTodo},
		{ID: "3", Name: "C", Status: entities.StatusInterview},
	}
	links := []entities.Link{
		{Source: "1", Target: "2"}, // endpoint filtered out
		{Source: "1", Target: "3"},
	}

	_, visLinks := VisibleGraph(nodes, links, FilterCriteria{Status: entities.StatusInterview})

	require.Len(t, visLinks, 1)
	assert.Equal(t, entities.Link{Source: "1", Target: "3"}, visLinks[0])
}

func TestVisibleGraph_DanglingLinksAreDropped(t *testing.T) {
	nodes := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo},
	}
	links := []entities.Link{
		{Source: "1", Target: "ghost"},
		{Source: "ghost", Target: "1"},
	}

	visNodes, visLinks := VisibleGraph(nodes, links, FilterCriteria{})

	assert.Len(t, visNodes, 1)
	assert.Empty(t, visLinks)
}

func TestFilterCriteria_IsZero(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsZero())
	assert.False(t, FilterCriteria{Starred: true}.IsZero())
	assert.False(t, FilterCriteria{Team: "Eng"}.IsZero())
}
