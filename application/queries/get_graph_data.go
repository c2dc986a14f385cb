package queries

import (
	"hiretrack-backend/domain/core/entities"
	pkgerrors "hiretrack-backend/pkg/errors"
)

// GetGraphDataQuery represents a query for the rendered visualization data.
// The three filters are AND-combined; zero values pass everything through.
type GetGraphDataQuery struct {
	Status  string `json:"status,omitempty"`
	Starred bool   `json:"starred,omitempty"`
	Team    string `json:"team,omitempty"`
}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	if q.Status != "" && !entities.Status(q.Status).IsValid() {
		return pkgerrors.NewValidationError("unknown status filter: " + q.Status)
	}
	return nil
}

// GraphNode is a node descriptor in the shape the graph widget consumes
type GraphNode struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	Opacity   float64 `json:"opacity"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Draggable bool    `json:"draggable"`
}

// GraphEdge is an edge descriptor in the shape the graph widget consumes.
// Animated is true iff the edge's target person is starred.
type GraphEdge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Animated bool   `json:"animated"`
}

// GraphStats contains simple counts over the rendered graph
type GraphStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
	TeamCount int `json:"team_count"`
}

// GetGraphDataResult represents the complete graph data for visualization
type GetGraphDataResult struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
	Stats GraphStats  `json:"stats"`
}
