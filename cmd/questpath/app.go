package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/questpath/api"
	"github.com/katalvlaran/questpath/genetic"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/mission"
	"github.com/katalvlaran/questpath/service"
	"github.com/katalvlaran/questpath/transport/mcp"
)

func envVars(name string) cli.ValueSourceChain {
	return cli.EnvVars("QUESTPATH_" + name)
}

// newApp builds the command tree.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "grid route search and multi-agent mission planning",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log with file and line",
				Sources: envVars("DEBUG"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "concurrent searches per mission cost matrix (0 = one per CPU)",
				Sources: envVars("WORKERS"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			searchCommand(),
			planCommand(),
			inspectCommand(),
			speciesCommand(),
			randomCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}
}

func newService(cmd *cli.Command) service.Service {
	var opts []service.Option
	if n := int(cmd.Int("workers")); n > 0 {
		opts = append(opts, service.WithWorkers(n))
	}
	return service.New(opts...)
}

// ---------- search ----------

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "find a route between two cells of a grid file",
		ArgsUsage: "GRID_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Value: "0,0", Usage: "start cell as x,y"},
			&cli.StringFlag{Name: "goal", Usage: "goal cell as x,y", Required: true},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "astar",
				Usage:   "bfs, dfs, dls, ids or astar",
				Sources: envVars("ALGORITHM"),
			},
			&cli.StringFlag{Name: "species", Usage: "mover species (unit costs when empty)"},
			&cli.StringFlag{Name: "actions", Usage: "move priority for dfs, dls and ids, e.g. up,left,down,right"},
			&cli.IntFlag{Name: "depth-limit", Value: -1, Usage: "depth limit for dls"},
			&cli.IntFlag{Name: "max-depth", Usage: "IDS ceiling (0 = service default)"},
			&cli.BoolFlag{Name: "enhanced", Usage: "slide through corridors"},
			&cli.BoolFlag{Name: "json", Usage: "print the result as JSON"},
		},
		Action: runSearch,
	}
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("search: expected one GRID_FILE argument")
	}
	text, err := os.ReadFile(cmd.Args().First())
	if err != nil {
		return err
	}

	req := service.SearchRequest{
		Grid:      string(text),
		Algorithm: cmd.String("algorithm"),
		Species:   cmd.String("species"),
		MaxDepth:  int(cmd.Int("max-depth")),
		Enhanced:  cmd.Bool("enhanced"),
	}
	if req.Start, err = parseCoord(cmd.String("start")); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if req.Goal, err = parseCoord(cmd.String("goal")); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if req.Actions, err = grid.ParseDirections(cmd.String("actions")); err != nil {
		return err
	}
	if limit := int(cmd.Int("depth-limit")); limit >= 0 {
		req.DepthLimit = &limit
	}

	res, err := newService(cmd.Root()).Search(ctx, req)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.Bool("json") {
		return writeJSON(w, res)
	}
	fmt.Fprintf(w, "%s: %s\n", res.Algorithm, res.Status)
	fmt.Fprintf(w, "expanded: %d\n", res.Expanded)
	if len(res.Path) == 0 && res.Reachable {
		fmt.Fprintln(w, "note: the goal is connected, but not for this mover or depth")
	}
	if len(res.Path) > 0 {
		fmt.Fprintf(w, "cost: %d\n", res.Cost)
		fmt.Fprintf(w, "steps: %d\n", res.Steps)
		fmt.Fprintf(w, "path: %v\n", res.Path)
		fmt.Fprintf(w, "actions: %v\n", res.Actions)
	}
	if len(res.DecisionPoints) > 0 {
		fmt.Fprintf(w, "decision points: %v\n", res.DecisionPoints)
	}

	return nil
}

// parseCoord reads "x,y".
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}

	return grid.Coord{X: x, Y: y}, nil
}

// ---------- plan ----------

func planCommand() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "assign goals to agents and route them to the exit",
		ArgsUsage: "MISSION_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "strategy",
				Usage:   "auto, exhaustive or genetic (overrides the file)",
				Sources: envVars("STRATEGY"),
			},
			&cli.IntFlag{Name: "seed", Usage: "genetic random seed", Sources: envVars("SEED")},
			&cli.IntFlag{Name: "generations", Usage: "genetic generations (0 = default)"},
			&cli.IntFlag{Name: "population", Usage: "genetic population size (0 = default)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every genetic generation"},
			&cli.BoolFlag{Name: "json", Usage: "print the plan as JSON"},
		},
		Action: runPlan,
	}
}

func runPlan(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("plan: expected one MISSION_FILE argument")
	}
	m, err := mission.LoadFile(cmd.Args().First())
	if err != nil {
		return err
	}

	// 1) Strategy and genetic tuning
	var opts []mission.Option
	if s := cmd.String("strategy"); s != "" {
		st, err := mission.ParseStrategy(s)
		if err != nil {
			return err
		}
		opts = append(opts, mission.WithStrategy(st))
	}
	if n := int(cmd.Root().Int("workers")); n > 0 {
		opts = append(opts, mission.WithWorkers(n))
	}
	var gopts []genetic.Option
	if seed := int64(cmd.Int("seed")); seed != 0 {
		gopts = append(gopts, genetic.WithSeed(seed))
	}
	if n := int(cmd.Int("generations")); n > 0 {
		gopts = append(gopts, genetic.WithGenerations(n))
	}
	if n := int(cmd.Int("population")); n > 0 {
		gopts = append(gopts, genetic.WithPopulationSize(n))
	}
	opts = append(opts, mission.WithGeneticOptions(gopts...))
	if cmd.Bool("verbose") {
		opts = append(opts, mission.WithOnGeneration(func(s genetic.Stats) {
			log.Printf("[GEN %d] best=%d mean=%.1f discarded=%d", s.Generation, s.Best, s.Mean, s.Discarded)
		}))
	}

	// 2) Plan and report
	res, err := mission.Plan(ctx, m, opts...)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.Bool("json") {
		return writeJSON(w, res)
	}
	fmt.Fprintf(w, "strategy: %s\n", res.Strategy)
	if res.Generations > 0 {
		fmt.Fprintf(w, "generations: %d\n", res.Generations)
	}
	fmt.Fprintf(w, "total cost: %d\n", res.Cost)
	if !res.Feasible {
		fmt.Fprintln(w, "WARNING: some legs are unreachable")
	}
	for _, r := range res.Routes {
		fmt.Fprintf(w, "%s: %v cost=%d\n", r.Agent, r.Goals, r.Cost)
		if r.Path != nil {
			fmt.Fprintf(w, "  path: %v\n", r.Path)
		}
	}

	return nil
}

// ---------- inspect / species ----------

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "summarize a grid file",
		ArgsUsage: "GRID_FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("inspect: expected one GRID_FILE argument")
			}
			text, err := os.ReadFile(cmd.Args().First())
			if err != nil {
				return err
			}
			info, err := newService(cmd.Root()).Inspect(string(text))
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			fmt.Fprintf(w, "size: %dx%d\n", info.Width, info.Height)
			fmt.Fprintf(w, "walkable: %d\n", info.Walkable)
			fmt.Fprintf(w, "components: %d\n", info.Components)
			fmt.Fprintf(w, "junctions: %d\n", info.Junctions)
			names := make([]string, 0, len(info.Terrain))
			for name := range info.Terrain {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "  %-8s %d\n", name, info.Terrain[name])
			}
			return nil
		},
	}
}

func speciesCommand() *cli.Command {
	return &cli.Command{
		Name:  "species",
		Usage: "list species cost tables",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			for _, sp := range newService(cmd.Root()).Species() {
				fmt.Fprintf(w, "%s:", sp.Name)
				for _, t := range grid.Terrains() {
					c, ok := sp.Costs[t.String()]
					if !ok {
						continue
					}
					if c < 0 {
						fmt.Fprintf(w, " %s=inf", t)
					} else {
						fmt.Fprintf(w, " %s=%d", t, c)
					}
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func randomCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "print a random grid in the text format",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 10, Usage: "columns"},
			&cli.IntFlag{Name: "height", Value: 10, Usage: "rows"},
			&cli.FloatFlag{Name: "open", Value: 0.5, Usage: "probability that a cell is walkable"},
			&cli.StringFlag{Name: "terrain", Value: "road", Usage: "comma-separated kinds for walkable cells"},
			&cli.IntFlag{Name: "seed", Usage: "random seed (0 = time based)", Sources: envVars("SEED")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var kinds []grid.Terrain
			for _, name := range strings.Split(cmd.String("terrain"), ",") {
				t, err := grid.ParseTerrain(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				kinds = append(kinds, t)
			}
			seed := int64(cmd.Int("seed"))
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			g, err := grid.Random(rand.New(rand.NewSource(seed)),
				int(cmd.Int("width")), int(cmd.Int("height")), cmd.Float("open"), kinds...)
			if err != nil {
				return err
			}
			return grid.Encode(cmd.Root().Writer, g)
		},
	}
}

// ---------- serve / mcp ----------

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the REST and WebSocket API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:8080",
				Usage:   "listen address",
				Sources: envVars("ADDR"),
			},
			&cli.StringSliceFlag{
				Name:    "allowed-origin",
				Usage:   "cross-origin page allowed to open /ws/plan (repeatable, * for any)",
				Sources: envVars("ALLOWED_ORIGINS"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   30 * time.Second,
				Usage:   "per-request planning timeout",
				Sources: envVars("TIMEOUT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			addr := cmd.String("addr")
			srv := api.NewServer(newService(cmd.Root()),
				api.WithTimeout(cmd.Duration("timeout")),
				api.WithVersion(Version),
				api.WithAllowedOrigins(cmd.StringSlice("allowed-origin")...),
			)
			httpServer := &http.Server{
				Addr:        addr,
				Handler:     srv,
				ReadTimeout: 15 * time.Second,
				IdleTimeout: 60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Starting %s v%s", AppName, Version)
				log.Printf("REST API: http://%s/api", addr)
				log.Printf("WebSocket: ws://%s/ws/plan", addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Println("Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Println("Server stopped")
			return nil
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the MCP tools on stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// stdout carries the protocol
			log.SetOutput(os.Stderr)
			return mcp.NewServer(newService(cmd.Root()), Version).ServeStdio()
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
