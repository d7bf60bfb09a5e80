// Package dynamo provides the shared primitives of the airflow simulation.
//
// The package defines the small vocabulary every other package speaks:
//
//   - [Vec2]: a 2D screen-space point or vector, NaN-safe on normalization
//   - [Rand]: uniform random source (seedable, injected)
//   - [Noise]: coherent 3D noise field in [0, 1)
//   - [SimError]: frame-tagged error for headless runs
//
// # Example
//
//	rng := rand.New(rand.NewSource(42))
//	dir := dynamo.Random2D(rng)
//	vel := dir.Scale(dynamo.Uniform(rng, 1, 5))
//
// # Thread Safety
//
// Nothing here holds state, but the Rand and Noise implementations passed
// around are NOT thread-safe. One frame loop owns a session.
package dynamo
