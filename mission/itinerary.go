package mission

import (
	"github.com/katalvlaran/questpath/costmatrix"
	"github.com/katalvlaran/questpath/grid"
)

// Itinerary concatenates the legs START → goals[0] → … → exit of one agent.
// Each leg starts where the previous one ended, so the junction cell is kept
// once. With no goals the agent stays put and the itinerary is its start.
// Returns nil for an unknown agent or when any leg is unreachable.
func Itinerary(set *costmatrix.Set, agentName string, goals []string) []grid.Coord {
	if len(goals) == 0 {
		for _, a := range set.Agents() {
			if a.Name == agentName {
				return []grid.Coord{a.Start}
			}
		}
		return nil
	}

	stops := make([]string, 0, len(goals)+2)
	stops = append(stops, costmatrix.Start)
	stops = append(stops, goals...)
	stops = append(stops, set.Exit().Name)

	var out []grid.Coord
	for i := 1; i < len(stops); i++ {
		leg := set.Path(agentName, stops[i-1], stops[i])
		if leg == nil {
			return nil
		}
		if len(out) > 0 && out[len(out)-1] == leg[0] {
			leg = leg[1:]
		}
		out = append(out, leg...)
	}

	return out
}
