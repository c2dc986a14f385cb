package entities

// TeamIDPrefix marks the synthetic node ids derived for team groupings.
// Team nodes are never persisted; the prefix keeps them from colliding with
// person ids in the rendered graph.
const TeamIDPrefix = "team_"

// Link is an undirected relationship between two person ids, or between a
// derived team node and one of its members. Duplicate and self-referential
// links are tolerated; links whose endpoints no longer exist stay in storage
// and are dropped from the visible set at filter time.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// References reports whether the link touches the given id on either end
func (l Link) References(id string) bool {
	return l.Source == id || l.Target == id
}

// TeamNodeID returns the synthetic node id for a team name
func TeamNodeID(team string) string {
	return TeamIDPrefix + team
}
