// Package ga implements the genetic-algorithm engine of gatsp:
// individuals, populations, the operator suite, adaptive diversity
// control, and the generational loop (Run).
//
// Model:
//   - An Individual is an open tour — a permutation of {0..n-1} — with
//     a cached cost (lower is better). Every operator is closed over
//     the permutation space: crossover and mutation can never duplicate
//     or drop a city.
//   - A Population is a fixed-size ordered collection of individuals;
//     its size equals Config.PopulationSize at every stable point.
//   - The engine owns the population exclusively; operators receive it
//     read-only and return fresh offspring.
//
// Generational loop (Run), in order: evaluate stale fitness → consult
// the diversity controller for current parameters → selection picks
// parents → crossover + mutation produce offspring → elitist
// replacement assembles the next generation → best-ever updates →
// registered observers are notified synchronously. The loop terminates
// when MaxGenerations is exhausted or when stagnation plus collapsed
// diversity signal convergence.
//
// Determinism: a single seeded RNG (Config.Seed; 0 ⇒ fixed default) is
// threaded explicitly through every stochastic call. Two runs with the
// same problem, configuration and seed produce identical results,
// generation by generation. There is no hidden global generator and no
// map iteration on any algorithmic path.
//
// Errors (sentinel):
//
//	– ErrInvalidConfig    bad parameter combination (raised by Validate/Run).
//	– ErrNilProblem       Run received a nil problem.
//	– ErrCallbackFailure  an observer returned an error; the run aborts.
//
// Observer callbacks are read-only: they receive deep-copied snapshots
// and must not attempt to steer the run. An observer error aborts the
// run immediately and surfaces wrapped in ErrCallbackFailure.
package ga
