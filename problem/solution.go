package problem

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/questpath/grid"
)

// Status tags a search outcome.
type Status int

const (
	// Failure means no path exists under the algorithm's exploration policy.
	Failure Status = iota
	// Success means Solution.Node reaches the goal.
	Success
	// Cutoff means a depth limit, not exhaustion, stopped the search.
	// Only depth-limited search produces it.
	Cutoff
)

// String returns "SUCCESS", "FAILURE" or "CUTOFF".
func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Cutoff:
		return "CUTOFF"
	}
	return "FAILURE"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts the names produced by String, in any case.
func (s *Status) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "SUCCESS":
		*s = Success
	case "FAILURE":
		*s = Failure
	case "CUTOFF":
		*s = Cutoff
	default:
		return fmt.Errorf("problem: unknown status %q", b)
	}
	return nil
}

// Solution is the result of a search.
type Solution struct {
	Status Status
	// Node is the terminal node; set only on Success.
	Node *Node
	// Expanded counts the nodes whose successors were generated.
	Expanded int
}

// Found reports whether the search reached the goal.
func (s Solution) Found() bool { return s.Status == Success && s.Node != nil }

// Path returns the coordinates from start to goal, or nil without a solution.
func (s Solution) Path() []grid.Coord {
	if !s.Found() {
		return nil
	}
	return s.Node.Coords()
}

// Cost returns the accumulated path cost, or -1 without a solution.
func (s Solution) Cost() int {
	if !s.Found() {
		return -1
	}
	return s.Node.Cost
}

// Steps returns the number of moves on the path, or -1 without a solution.
func (s Solution) Steps() int {
	if !s.Found() {
		return -1
	}
	return s.Node.Depth
}
