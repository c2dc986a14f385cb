package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack-backend/domain/core/entities"
)

func floatPtr(v float64) *float64 { return &v }

func placedByID(nodes []PlacedNode) map[string]PlacedNode {
	m := make(map[string]PlacedNode, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}

func TestLayoutEngine_DerivesTeamAnchorsInFirstSeenOrder(t *testing.T) {
	engine := NewLayoutEngine(DefaultLayoutConfig())
	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "2", Name: "B", Status: entities.StatusTodo, Team: "Design"},
		{ID: "3", Name: "C", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "4", Name: "D", Status: entities.StatusTodo},
	}

	nodes, _ := engine.Layout(visible)

	// Team anchors lead the slice, then persons in input order.
	require.Len(t, nodes, 6)
	assert.Equal(t, entities.TeamNodeID("Eng"), nodes[0].ID)
	assert.Equal(t, entities.TeamNodeID("Design"), nodes[1].ID)
	assert.False(t, nodes[0].Draggable)
	assert.False(t, nodes[1].Draggable)
	assert.Equal(t, "1", nodes[2].ID)
	assert.True(t, nodes[2].Draggable)
}

func TestLayoutEngine_TeamGridPositions(t *testing.T) {
	cfg := DefaultLayoutConfig()
	cfg.TeamsPerRow = 2
	cfg.ColumnSpacing = 100
	cfg.RowOffsets = []float64{0, 500}
	engine := NewLayoutEngine(cfg)

	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "T1"},
		{ID: "2", Name: "B", Status: entities.StatusTodo, Team: "T2"},
		{ID: "3", Name: "C", Status: entities.StatusTodo, Team: "T3"},
	}

	nodes, _ := engine.Layout(visible)
	byID := placedByID(nodes)

	assert.Equal(t, 0.0, byID[entities.TeamNodeID("T1")].X)
	assert.Equal(t, 0.0, byID[entities.TeamNodeID("T1")].Y)
	assert.Equal(t, 100.0, byID[entities.TeamNodeID("T2")].X)
	assert.Equal(t, 0.0, byID[entities.TeamNodeID("T2")].Y)
	// Third team wraps to the second row.
	assert.Equal(t, 0.0, byID[entities.TeamNodeID("T3")].X)
	assert.Equal(t, 500.0, byID[entities.TeamNodeID("T3")].Y)
}

func TestLayoutEngine_RowOffsetFallsBackToZeroPastKnownRows(t *testing.T) {
	cfg := DefaultLayoutConfig()
	cfg.TeamsPerRow = 1
	cfg.RowOffsets = []float64{0, 400}
	engine := NewLayoutEngine(cfg)

	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "T1"},
		{ID: "2", Name: "B", Status: entities.StatusTodo, Team: "T2"},
		{ID: "3", Name: "C", Status: entities.StatusTodo, Team: "T3"},
	}

	nodes, _ := engine.Layout(visible)
	byID := placedByID(nodes)

	// Row 2 is past the offset list; it overlaps row 0 at offset zero.
	assert.Equal(t, 0.0, byID[entities.TeamNodeID("T3")].Y)
	assert.Equal(t, byID[entities.TeamNodeID("T1")].Y, byID[entities.TeamNodeID("T3")].Y)
}

func TestLayoutEngine_MembersOnCircleAroundAnchor(t *testing.T) {
	cfg := DefaultLayoutConfig()
	cfg.MemberRadius = 100
	engine := NewLayoutEngine(cfg)

	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "2", Name: "B", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "3", Name: "C", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "4", Name: "D", Status: entities.StatusTodo, Team: "Eng"},
	}

	nodes, _ := engine.Layout(visible)
	byID := placedByID(nodes)
	anchor := byID[entities.TeamNodeID("Eng")]

	for i, id := range []string{"1", "2", "3", "4"} {
		angle := 2 * math.Pi * float64(i) / 4
		got := byID[id]
		assert.InDelta(t, anchor.X+100*math.Cos(angle), got.X, 1e-9, "member %s x", id)
		assert.InDelta(t, anchor.Y+100*math.Sin(angle), got.Y, 1e-9, "member %s y", id)
	}
}

func TestLayoutEngine_StoredPositionWinsOverComputedPlacement(t *testing.T) {
	engine := NewLayoutEngine(DefaultLayoutConfig())
	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "Eng", X: floatPtr(-77), Y: floatPtr(33)},
		{ID: "2", Name: "B", Status: entities.StatusTodo, Team: "Eng"},
	}

	nodes, _ := engine.Layout(visible)
	byID := placedByID(nodes)

	assert.Equal(t, -77.0, byID["1"].X)
	assert.Equal(t, 33.0, byID["1"].Y)
}

func TestLayoutEngine_TeamlessPersonDefaultsToOrigin(t *testing.T) {
	engine := NewLayoutEngine(DefaultLayoutConfig())
	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo},
	}

	nodes, membership := engine.Layout(visible)

	require.Len(t, nodes, 1)
	assert.Equal(t, 0.0, nodes[0].X)
	assert.Equal(t, 0.0, nodes[0].Y)
	assert.Empty(t, membership)
}

func TestLayoutEngine_IsDeterministic(t *testing.T) {
	engine := NewLayoutEngine(DefaultLayoutConfig())
	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "2", Name: "B", Status: entities.StatusInterview, Team: "Design"},
		{ID: "3", Name: "C", Status: entities.StatusCEO, Team: "Eng"},
		{ID: "4", Name: "D", Status: entities.StatusRejected},
	}

	nodesA, linksA := engine.Layout(visible)
	nodesB, linksB := engine.Layout(visible)

	assert.Equal(t, nodesA, nodesB)
	assert.Equal(t, linksA, linksB)
}

func TestLayoutEngine_MembershipLinks(t *testing.T) {
	engine := NewLayoutEngine(DefaultLayoutConfig())
	visible := []entities.Person{
		{ID: "1", Name: "A", Status: entities.StatusTodo, Team: "Eng"},
		{ID: "2", Name: "B", Status: entities.StatusTodo},
		{ID: "3", Name: "C", Status: entities.StatusTodo, Team: "Eng"},
	}

	_, membership := engine.Layout(visible)

	assert.Equal(t, []entities.Link{
		{Source: entities.TeamNodeID("Eng"), Target: "1"},
		{Source: entities.TeamNodeID("Eng"), Target: "3"},
	}, membership)
}

func TestLayoutEngine_LabelsAndColors(t *testing.T) {
	cfg := DefaultLayoutConfig()
	engine := NewLayoutEngine(cfg)
	visible := []entities.Person{
		{ID: "1", Name: "Ada", Status: entities.StatusInterview, Starred: true},
		{ID: "2", Name: "Bob", Status: entities.StatusRejected},
		{ID: "3", Name: "Eve", Status: entities.Status("Unknown")},
	}

	nodes, _ := engine.Layout(visible)
	byID := placedByID(nodes)

	assert.Equal(t, "Ada ★", byID["1"].Label)
	assert.Equal(t, cfg.StatusColors[entities.StatusInterview], byID["1"].Color)
	assert.Equal(t, 1.0, byID["1"].Opacity)

	assert.Equal(t, "Bob", byID["2"].Label)
	assert.Equal(t, cfg.RejectedOpacity, byID["2"].Opacity)

	assert.Equal(t, cfg.DefaultColor, byID["3"].Color)
}
