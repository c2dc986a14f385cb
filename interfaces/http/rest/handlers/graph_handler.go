package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"hiretrack-backend/application/queries"
	qhandlers "hiretrack-backend/application/queries/handlers"
	"hiretrack-backend/pkg/common"
)

// GraphHandler serves the rendered visualization data
type GraphHandler struct {
	graphData *qhandlers.GetGraphDataHandler
	logger    *zap.Logger
}

// NewGraphHandler creates a graph handler
func NewGraphHandler(graphData *qhandlers.GetGraphDataHandler, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		graphData: graphData,
		logger:    logger,
	}
}

// GetGraphData handles GET /graph-data. The optional status, starred and
// team query parameters are AND-combined filters; the response is the bare
// node/edge descriptor set the graph widget consumes.
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := queries.GetGraphDataQuery{
		Status:  params.Get("status"),
		Starred: params.Get("starred") == "true" || params.Get("starred") == "1",
		Team:    params.Get("team"),
	}

	result, err := h.graphData.Handle(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to get graph data",
			zap.String("status", query.Status),
			zap.String("team", query.Team),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondRaw(w, http.StatusOK, result)
}
