package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hiretrack-backend/application/queries"
	appservices "hiretrack-backend/application/services"
	"hiretrack-backend/domain/core/entities"
	domainservices "hiretrack-backend/domain/services"
	"hiretrack-backend/infrastructure/persistence/abstractions"
)

// GetGraphDataHandler runs the visualization pipeline: load the document,
// filter it, lay out the visible graph, and adapt the result to the widget
// descriptor shape
type GetGraphDataHandler struct {
	store  abstractions.DocumentStore
	layout *appservices.LayoutProvider
	logger *zap.Logger
}

// NewGetGraphDataHandler creates a graph data query handler
func NewGetGraphDataHandler(
	store abstractions.DocumentStore,
	layout *appservices.LayoutProvider,
	logger *zap.Logger,
) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		store:  store,
		layout: layout,
		logger: logger,
	}
}

// Handle executes the query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	doc, err := h.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	criteria := domainservices.FilterCriteria{
		Status:  entities.Status(query.Status),
		Starred: query.Starred,
		Team:    query.Team,
	}
	visibleNodes, visibleLinks := domainservices.VisibleGraph(doc.Nodes, doc.Links, criteria)

	engine := h.layout.Engine()
	placed, membership := engine.Layout(visibleNodes)

	result := adaptToWidget(placed, visibleLinks, membership, visibleNodes)

	h.logger.Debug("Graph data computed",
		zap.Int("visibleNodes", len(visibleNodes)),
		zap.Int("renderedNodes", len(result.Nodes)),
		zap.Int("renderedEdges", len(result.Edges)),
	)
	return result, nil
}

// adaptToWidget maps placed nodes and links into the external widget's
// expected descriptors. No domain logic lives here beyond the starred
// animation lookup.
func adaptToWidget(
	placed []domainservices.PlacedNode,
	visibleLinks []entities.Link,
	membership []entities.Link,
	visiblePersons []entities.Person,
) *queries.GetGraphDataResult {
	starred := make(map[string]bool, len(visiblePersons))
	for _, p := range visiblePersons {
		starred[p.ID] = p.Starred
	}

	nodes := make([]queries.GraphNode, 0, len(placed))
	teams := 0
	for _, n := range placed {
		if strings.HasPrefix(n.ID, entities.TeamIDPrefix) {
			teams++
		}
		nodes = append(nodes, queries.GraphNode{
			ID:        n.ID,
			Label:     n.Label,
			Color:     n.Color,
			Opacity:   n.Opacity,
			X:         n.X,
			Y:         n.Y,
			Draggable: n.Draggable,
		})
	}

	edges := make([]queries.GraphEdge, 0, len(visibleLinks)+len(membership))
	appendEdge := func(l entities.Link) {
		edges = append(edges, queries.GraphEdge{
			ID:       fmt.Sprintf("%s-%s", l.Source, l.Target),
			Source:   l.Source,
			Target:   l.Target,
			Animated: starred[l.Target],
		})
	}
	for _, l := range visibleLinks {
		appendEdge(l)
	}
	for _, l := range membership {
		appendEdge(l)
	}

	return &queries.GetGraphDataResult{
		Nodes: nodes,
		Edges: edges,
		Stats: queries.GraphStats{
			NodeCount: len(nodes),
			EdgeCount: len(edges),
			TeamCount: teams,
		},
	}
}
