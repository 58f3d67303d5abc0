// Command gatsp runs the genetic TSP engine on a TSPLIB file or a
// random instance, with optional terminal visualization and websocket
// progress streaming.
//
// Usage:
//
//	gatsp -file berlin52.tsp
//	gatsp -cities 30 -pop 120 -gens 800 -seed 7
//	gatsp -file berlin52.tsp -viz
//	gatsp -cities 40 -listen :8080   # progress at ws://:8080/ws
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/problem"
	"github.com/katalvlaran/gatsp/stream"
	"github.com/katalvlaran/gatsp/tsplib"
	"github.com/katalvlaran/gatsp/viz"
)

// progressStride throttles the plain-text progress printer.
const progressStride = 50

// coordSpan is the side length of the square random instances are
// drawn from.
const coordSpan = 200.0

func main() {
	var (
		file   = flag.String("file", "", "TSPLIB instance to solve (EUC_2D)")
		cities = flag.Int("cities", 0, "generate a random instance of this size instead")
		pop    = flag.Int("pop", 0, "population size (0 = scale with instance size)")
		gens   = flag.Int("gens", 0, "generation budget (0 = scale with instance size)")
		seed   = flag.Int64("seed", 42, "RNG seed (0 = fixed default stream)")
		useViz = flag.Bool("viz", false, "draw the evolving tour in the terminal")
		listen = flag.String("listen", "", "serve generation updates over websocket at this address")
	)
	flag.Parse()

	if err := run(*file, *cities, *pop, *gens, *seed, *useViz, *listen); err != nil {
		fmt.Fprintln(os.Stderr, "gatsp:", err)
		os.Exit(1)
	}
}

func run(file string, cities, pop, gens int, seed int64, useViz bool, listen string) error {
	p, coords, optimum, err := buildInstance(file, cities, seed)
	if err != nil {
		return err
	}

	cfg := scaledConfig(p.Len())
	cfg.Seed = seed
	if pop > 0 {
		cfg.PopulationSize = pop
	}
	if gens > 0 {
		cfg.MaxGenerations = gens
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("instance: %d cities  population: %d  generations: %d  seed: %d\n",
		p.Len(), cfg.PopulationSize, cfg.MaxGenerations, cfg.Seed)

	var observers []ga.Observer

	if listen != "" {
		b := stream.NewBroadcaster()
		defer b.Close()

		mux := http.NewServeMux()
		mux.Handle("/ws", b.Handler())
		go func() {
			if serveErr := http.ListenAndServe(listen, mux); serveErr != nil {
				fmt.Fprintln(os.Stderr, "gatsp: websocket server:", serveErr)
			}
		}()
		fmt.Printf("streaming updates at ws://%s/ws\n", listen)
		observers = append(observers, b.Observer())
	}

	var monitor *viz.Monitor
	switch {
	case useViz && coords == nil:
		return viz.ErrNoCoordinates
	case useViz:
		if monitor, err = viz.NewMonitor(coords); err != nil {
			return err
		}
		if optimum > 0 {
			monitor.SetOptimum(optimum)
		}
		observers = append(observers, monitor.Observer())
	default:
		observers = append(observers, progressPrinter())
	}

	res, err := ga.Run(p, cfg, observers...)
	if monitor != nil {
		// Restore the terminal before printing anything else.
		monitor.Close()
	}
	if errors.Is(err, viz.ErrInterrupted) {
		fmt.Println("interrupted")
		return nil
	}
	if err != nil {
		return err
	}

	report(res, optimum)

	return nil
}

// buildInstance loads the TSPLIB file or generates a random instance.
// It returns the problem, drawable coordinates (nil when unavailable)
// and the known optimum (0 when unknown).
func buildInstance(file string, cities int, seed int64) (*problem.Problem, [][2]float64, float64, error) {
	switch {
	case file != "" && cities > 0:
		return nil, nil, 0, errors.New("choose either -file or -cities, not both")

	case file != "":
		inst, err := tsplib.LoadFile(file)
		if err != nil {
			return nil, nil, 0, err
		}
		p, err := inst.Problem()
		if err != nil {
			return nil, nil, 0, err
		}
		opt, _ := tsplib.KnownOptimum(inst.Name)
		fmt.Printf("loaded %s (%s)\n", inst.Name, inst.EdgeWeightType)

		return p, inst.Coords, opt, nil

	case cities > 1:
		coords := randomCoords(cities, seed)
		p, err := problem.NewFromCoordinates(coords)
		if err != nil {
			return nil, nil, 0, err
		}

		return p, coords, 0, nil

	default:
		return nil, nil, 0, errors.New("need -file or -cities (≥ 2)")
	}
}

// randomCoords draws n cities uniformly from the coordSpan square.
func randomCoords(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	coords := make([][2]float64, n)

	var i int
	for i = 0; i < n; i++ {
		coords[i] = [2]float64{rng.Float64() * coordSpan, rng.Float64() * coordSpan}
	}

	return coords
}

// scaledConfig mirrors the size-based profiles: small instances get a
// small population and budget, large instances get more of both plus
// deeper elitism.
func scaledConfig(n int) ga.Config {
	cfg := ga.DefaultConfig()

	switch {
	case n <= 10:
		cfg.PopulationSize = 50
		cfg.MaxGenerations = 200
		cfg.SurvivorFraction = 0.4
		cfg.CrossoverFraction = 0.4
		cfg.MutationFraction = 0.2
		cfg.ElitismCount = 2
	case n <= 16:
		cfg.PopulationSize = 100
		cfg.MaxGenerations = 400
		cfg.SurvivorFraction = 0.3
		cfg.CrossoverFraction = 0.5
		cfg.MutationFraction = 0.2
		cfg.ElitismCount = 3
	default:
		cfg.PopulationSize = 150
		cfg.MaxGenerations = 600
		cfg.SurvivorFraction = 0.25
		cfg.CrossoverFraction = 0.55
		cfg.MutationFraction = 0.2
		cfg.ElitismCount = 5
	}

	return cfg
}

// progressPrinter reports every progressStride generations (and the
// first one) on stdout.
func progressPrinter() ga.Observer {
	return func(s ga.Snapshot) error {
		if s.Generation%progressStride != 0 {
			return nil
		}
		fmt.Printf("gen %4d  best %10.1f  avg %10.1f  unique %.2f  stagnation %d\n",
			s.Generation, s.BestCost, s.AverageCost, s.Diversity.UniqueRatio, s.Stagnation)

		return nil
	}
}

// report prints the final summary, including the optimality gap when a
// published optimum is known.
func report(res ga.Result, optimum float64) {
	fmt.Println()
	fmt.Printf("best cost:   %.1f\n", res.BestCost)
	fmt.Printf("best tour:   %v\n", res.BestTour)
	fmt.Printf("generations: %d", res.Generations)
	if res.Converged {
		fmt.Print(" (converged)")
	}
	fmt.Println()
	fmt.Printf("elapsed:     %s\n", res.Elapsed)

	if optimum > 0 {
		fmt.Printf("optimum:     %.1f  gap %.2f%%\n",
			optimum, (res.BestCost-optimum)/optimum*100)
	}
}
