// Package gatsp is a genetic-algorithm toolkit for the Travelling
// Salesman Problem: given city coordinates or a distance matrix, it
// evolves a population of candidate tours toward a low-cost Hamiltonian
// cycle.
//
// 🚀 What is gatsp?
//
//	A deterministic, single-threaded GA engine with a small, explicit API:
//		• Problem model: immutable TSP instances (coords or matrix)
//		• Operator suite: tournament/roulette/rank selection, OX/PMX
//		  crossover, swap/inversion/scramble mutation
//		• Elitist replacement with exact population-size accounting and
//		  2-opt descent on every offspring (symmetric instances)
//		• Adaptive diversity control: stagnation detection, mutation-rate
//		  and selection-pressure adjustment, duplicate pruning, partial
//		  restarts
//		• Observer callbacks: synchronous per-generation snapshots
//
// ✨ Why choose gatsp?
//
//   - Reproducible – one seeded RNG threaded through every stochastic
//     call; identical (problem, config, seed) ⇒ identical results
//   - Strict invariants – every operator is closed over the permutation
//     space; violations surface as sentinel errors, never as silent drift
//   - Pure library core – no logging, no globals, no hidden goroutines
//
// The module is organized under five subpackages:
//
//	problem/ — immutable TSP instance: distances, tour cost, validation
//	ga/      — individuals, populations, operators, diversity control,
//	           and the generational engine (ga.Run)
//	tsplib/  — loader for TSPLIB EUC_2D instance files
//	viz/     — terminal renderer consuming the observer stream
//	stream/  — websocket broadcaster exposing snapshots as JSON
//
// Quick start:
//
//	p, _ := problem.NewFromCoordinates([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
//	cfg := ga.DefaultConfig()
//	cfg.Seed = 42
//	res, _ := ga.Run(p, cfg)
//	fmt.Println(res.BestCost) // 4
//
// See cmd/gatsp for an end-to-end binary wiring loader, engine and viewer.
package gatsp
