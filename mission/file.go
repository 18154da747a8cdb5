package mission

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/costmatrix"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// Document is the YAML form of a Mission:
//
//	grid: |
//	  1 1 1
//	  1 0 1
//	# or: grid_file: maps/island.txt (relative to the mission file)
//	agents:
//	  - name: hana
//	    species: HUMAN
//	    start: {x: 0, y: 0}
//	    actions: [UP, LEFT, DOWN, RIGHT]
//	  - name: otto
//	    costs: {WATER: 1, LAND: 2, SAND: inf}
//	    start: {x: 2, y: 0}
//	goals:
//	  - {name: KEY, at: {x: 2, y: 1}}
//	exit: {name: PORTAL, at: {x: 0, y: 1}}
//	strategy: auto
//
// The same document is accepted as JSON by the API.
type Document struct {
	Grid     string             `json:"grid,omitempty" yaml:"grid,omitempty"`
	GridFile string             `json:"grid_file,omitempty" yaml:"grid_file,omitempty"`
	Agents   []AgentDoc         `json:"agents" yaml:"agents"`
	Goals    []costmatrix.Point `json:"goals" yaml:"goals"`
	Exit     costmatrix.Point   `json:"exit" yaml:"exit"`
	Strategy string             `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// AgentDoc is one agent entry of a Document.
type AgentDoc struct {
	Name    string           `json:"name" yaml:"name"`
	Species string           `json:"species,omitempty" yaml:"species,omitempty"`
	Costs   map[string]Cost  `json:"costs,omitempty" yaml:"costs,omitempty"`
	Start   grid.Coord       `json:"start" yaml:"start"`
	Actions []grid.Direction `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// Cost is a per-terrain cost in a Document; "inf" or "impassable" mark a
// terrain the agent cannot enter.
type Cost int

// ParseCost accepts a decimal cost or one of "inf", "infinite", "impassable".
func ParseCost(s string) (Cost, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "inf", "infinite", "impassable":
		return Cost(problem.Impassable), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cost %q: %w", s, err)
	}

	return Cost(v), nil
}

// UnmarshalYAML accepts an integer or "inf".
func (c *Cost) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseCost(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = v

	return nil
}

// UnmarshalJSON accepts a number or a quoted cost such as "inf".
func (c *Cost) UnmarshalJSON(b []byte) error {
	v, err := ParseCost(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// MarshalJSON writes Impassable as "inf".
func (c Cost) MarshalJSON() ([]byte, error) {
	if int(c) == problem.Impassable {
		return []byte(`"inf"`), nil
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// MarshalYAML writes Impassable as "inf".
func (c Cost) MarshalYAML() (interface{}, error) {
	if int(c) == problem.Impassable {
		return "inf", nil
	}
	return int(c), nil
}

// Decode reads a YAML mission. A grid_file path is used as given.
func Decode(r io.Reader) (Mission, error) {
	return decode(r, "")
}

// LoadFile reads a YAML mission; grid_file is resolved relative to path.
func LoadFile(path string) (Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mission{}, fmt.Errorf("mission: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := decode(f, filepath.Dir(path))
	if err != nil {
		return Mission{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// DecodeDocument reads a mission document without resolving it. JSON is a
// subset of YAML, so either form is accepted. Unknown fields are rejected.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}

	return doc, nil
}

func decode(r io.Reader, dir string) (Mission, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return Mission{}, err
	}

	return doc.Mission(dir)
}

// Mission converts the document. dir resolves a relative grid_file.
func (d Document) Mission(dir string) (Mission, error) {
	var (
		m   Mission
		err error
	)

	// 1) Grid: inline or from file, not both
	switch {
	case d.Grid != "" && d.GridFile != "":
		return Mission{}, fmt.Errorf("%w: both grid and grid_file given", ErrInvalidMission)
	case d.Grid != "":
		m.Grid, err = grid.Load(strings.NewReader(d.Grid))
	case d.GridFile != "":
		path := d.GridFile
		if dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		m.Grid, err = grid.LoadFile(path)
	default:
		return Mission{}, fmt.Errorf("%w: no grid", ErrInvalidMission)
	}
	if err != nil {
		return Mission{}, err
	}

	// 2) Agents
	for i, ad := range d.Agents {
		a, err := ad.Agent()
		if err != nil {
			return Mission{}, fmt.Errorf("%w: agent %d: %v", ErrInvalidMission, i, err)
		}
		m.Agents = append(m.Agents, a)
	}

	// 3) Points and strategy
	m.Goals = append([]costmatrix.Point(nil), d.Goals...)
	m.Exit = d.Exit
	if m.Exit.Name == "" {
		m.Exit.Name = "EXIT"
	}
	if m.Strategy, err = ParseStrategy(d.Strategy); err != nil {
		return Mission{}, err
	}

	return m, nil
}

// Agent builds the agent described by ad. Explicit costs override the
// species table.
func (ad AgentDoc) Agent() (agent.Agent, error) {
	var opts []agent.Option
	if ad.Species != "" {
		sp, err := agent.ParseSpecies(ad.Species)
		if err != nil {
			return agent.Agent{}, err
		}
		opts = append(opts, agent.WithSpecies(sp))
	}
	if len(ad.Costs) > 0 {
		ct := make(problem.CostTable, len(ad.Costs))
		for name, c := range ad.Costs {
			t, err := grid.ParseTerrain(name)
			if err != nil {
				return agent.Agent{}, err
			}
			ct[t] = int(c)
		}
		opts = append(opts, agent.WithCosts(ct))
	}
	if len(ad.Actions) > 0 {
		opts = append(opts, agent.WithActions(ad.Actions...))
	}

	return agent.New(ad.Name, ad.Start, opts...)
}

// Encode writes m as a YAML document with an inline grid.
func Encode(w io.Writer, m Mission) error {
	var sb strings.Builder
	if err := grid.Encode(&sb, m.Grid); err != nil {
		return err
	}
	doc := Document{Grid: sb.String(), Goals: m.Goals, Exit: m.Exit}
	if m.Strategy != "" && m.Strategy != Auto {
		doc.Strategy = string(m.Strategy)
	}
	for _, a := range m.Agents {
		ad := AgentDoc{Name: a.Name, Start: a.Start, Actions: a.Actions}
		if a.Species != "" {
			ad.Species = string(a.Species)
		} else if a.Costs != nil {
			ad.Costs = make(map[string]Cost, len(a.Costs))
			for t, c := range a.Costs {
				ad.Costs[t.String()] = Cost(c)
			}
		}
		doc.Agents = append(doc.Agents, ad)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
