package services

import (
	"math"

	"hiretrack-backend/domain/core/entities"
	"hiretrack-backend/domain/core/valueobjects"
)

// LayoutConfig holds the placement and styling knobs for the team layout.
// Every value has a default; the config file may override the geometry.
type LayoutConfig struct {
	// TeamsPerRow is the number of team anchors per grid row.
	TeamsPerRow int
	// ColumnSpacing is the horizontal distance between team columns.
	ColumnSpacing float64
	// RowOffsets maps a grid row to its vertical position. Rows past the
	// end of the list fall back to offset 0, so team counts beyond the
	// anticipated rows will visually overlap. Accepted for small rosters;
	// not a hard limit anywhere else in the system.
	RowOffsets []float64
	// MemberRadius is the radius of the circle members are placed on
	// around their team anchor.
	MemberRadius float64

	// TeamColor is the marker color for derived team nodes, kept distinct
	// from every status color.
	TeamColor string
	// StatusColors maps each pipeline status to its node fill color.
	StatusColors map[entities.Status]string
	// DefaultColor is used when a stored document carries a status the
	// color table does not know.
	DefaultColor string
	// RejectedOpacity dims rejected candidates; everyone else renders at
	// full opacity.
	RejectedOpacity float64
}

// DefaultLayoutConfig returns the stock layout tuning
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		TeamsPerRow:   3,
		ColumnSpacing: 320,
		RowOffsets:    []float64{0, 420, 840},
		MemberRadius:  150,
		TeamColor:     "#8b5cf6",
		StatusColors: map[entities.Status]string{
			entities.StatusTodo:      "#f59e0b",
			entities.StatusInterview: "#3b82f6",
			entities.StatusCEO:       "#22c55e",
			entities.StatusRejected:  "#ef4444",
		},
		DefaultColor:    "#9ca3af",
		RejectedOpacity: 0.4,
	}
}

// starGlyph is appended to the label of starred persons
const starGlyph = " ★"

// PlacedNode is a fully positioned and styled node ready for the render
// adapter: a person, or a derived team anchor
type PlacedNode struct {
	ID        string
	Label     string
	Color     string
	Opacity   float64
	X         float64
	Y         float64
	Draggable bool
}

// LayoutEngine computes display coordinates for the visible graph. The
// computation is deterministic: the same visible nodes and config always
// produce the same placement, except that a person's manually dragged
// position always wins over the computed one.
type LayoutEngine struct {
	cfg LayoutConfig
}

// NewLayoutEngine creates a layout engine with the given tuning
func NewLayoutEngine(cfg LayoutConfig) *LayoutEngine {
	if cfg.TeamsPerRow <= 0 {
		cfg.TeamsPerRow = 1
	}
	return &LayoutEngine{cfg: cfg}
}

// Config returns the engine's tuning
func (e *LayoutEngine) Config() LayoutConfig {
	return e.cfg
}

// Layout derives team anchors for the distinct non-empty team names among
// the visible persons, synthesizes one membership link per (team, member)
// pair, and places every node. Team anchors come first in the returned
// slice, in first-seen order, followed by the persons in input order.
func (e *LayoutEngine) Layout(visible []entities.Person) ([]PlacedNode, []entities.Link) {
	teamOrder, teamAnchors := e.teamGrid(visible)

	// Per-team member counts and running indexes drive the circular
	// placement angle for members without a stored position.
	memberCount := make(map[string]int, len(teamOrder))
	for _, p := range visible {
		if p.Team != "" {
			memberCount[p.Team]++
		}
	}
	memberIndex := make(map[string]int, len(teamOrder))

	nodes := make([]PlacedNode, 0, len(teamOrder)+len(visible))
	for _, team := range teamOrder {
		anchor := teamAnchors[team]
		nodes = append(nodes, PlacedNode{
			ID:        entities.TeamNodeID(team),
			Label:     team,
			Color:     e.cfg.TeamColor,
			Opacity:   1,
			X:         anchor.X(),
			Y:         anchor.Y(),
			Draggable: false,
		})
	}

	membership := make([]entities.Link, 0, len(visible))
	for _, p := range visible {
		pos := e.placePerson(p, teamAnchors, memberCount, memberIndex)
		nodes = append(nodes, PlacedNode{
			ID:        p.ID,
			Label:     e.label(p),
			Color:     e.color(p),
			Opacity:   e.opacity(p),
			X:         pos.X(),
			Y:         pos.Y(),
			Draggable: true,
		})
		if p.Team != "" {
			membership = append(membership, entities.Link{
				Source: entities.TeamNodeID(p.Team),
				Target: p.ID,
			})
		}
	}

	return nodes, membership
}

// teamGrid assigns each distinct non-empty team a fixed grid position,
// preserving first-seen order
func (e *LayoutEngine) teamGrid(visible []entities.Person) ([]string, map[string]valueobjects.Position) {
	var order []string
	anchors := make(map[string]valueobjects.Position)
	for _, p := range visible {
		if p.Team == "" {
			continue
		}
		if _, seen := anchors[p.Team]; seen {
			continue
		}
		i := len(order)
		col := i % e.cfg.TeamsPerRow
		row := i / e.cfg.TeamsPerRow
		pos, _ := valueobjects.NewPosition(float64(col)*e.cfg.ColumnSpacing, e.rowOffset(row))
		anchors[p.Team] = pos
		order = append(order, p.Team)
	}
	return order, anchors
}

// rowOffset looks up the vertical position of a grid row, defaulting to 0
// past the configured rows
func (e *LayoutEngine) rowOffset(row int) float64 {
	if row >= 0 && row < len(e.cfg.RowOffsets) {
		return e.cfg.RowOffsets[row]
	}
	return 0
}

// placePerson resolves one person's coordinates. A stored position wins
// verbatim; otherwise members go on a circle around their team anchor at
// angle 2π·i/n, and teamless persons default to the origin.
func (e *LayoutEngine) placePerson(
	p entities.Person,
	anchors map[string]valueobjects.Position,
	memberCount map[string]int,
	memberIndex map[string]int,
) valueobjects.Position {
	// Consume the member slot even for manually placed nodes so the
	// remaining members keep stable angles.
	var i, n int
	if p.Team != "" {
		i = memberIndex[p.Team]
		memberIndex[p.Team]++
		n = memberCount[p.Team]
	}

	if p.HasStoredPosition() {
		pos, err := valueobjects.NewPosition(*p.X, *p.Y)
		if err == nil {
			return pos
		}
	}

	if anchor, ok := anchors[p.Team]; ok && p.Team != "" {
		angle := 2 * math.Pi * float64(i) / float64(n)
		return anchor.OnCircle(e.cfg.MemberRadius, angle)
	}

	return valueobjects.Origin()
}

// label renders the display name, starring where deserved
func (e *LayoutEngine) label(p entities.Person) string {
	if p.Starred {
		return p.Name + starGlyph
	}
	return p.Name
}

// color resolves the fill color from the status table
func (e *LayoutEngine) color(p entities.Person) string {
	if c, ok := e.cfg.StatusColors[p.Status]; ok {
		return c
	}
	return e.cfg.DefaultColor
}

func (e *LayoutEngine) opacity(p entities.Person) float64 {
	if p.Status == entities.StatusRejected {
		return e.cfg.RejectedOpacity
	}
	return 1
}
