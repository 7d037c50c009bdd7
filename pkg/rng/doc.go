// Package rng provides deterministic random number generation for statecover's
// generation pipeline.
//
// # Overview
//
// The RNG type ensures reproducible covering-array generation and diagram
// layout by deriving stage-specific seeds from a master seed. This allows each
// pipeline stage (covering-array search, covering-array sampling, diagram layout) to
// have independent random sequences while maintaining overall determinism.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for entire generation
//   - stageName: Pipeline stage identifier (e.g., "covering-array")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	configHash := sha256.Sum256([]byte(configJSON))
//	coveringRNG := rng.NewRNG(masterSeed, "covering-array", configHash[:])
//	layoutRNG := rng.NewRNG(masterSeed, "diagram-layout", configHash[:])
//
// Use the RNG for all random decisions in that stage:
//
//	pick := coveringRNG.Intn(len(candidates))
//	jitter := layoutRNG.Float64Range(-1.0, 1.0)
//	if coveringRNG.Bool() {
//	    // break a scoring tie toward the later candidate
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
package rng
