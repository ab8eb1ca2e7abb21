// Package platform implements procedural construction and verification of
// 2D platformer levels: a deterministic RNG, a biome/archetype-indexed
// segment pool, an archetype pacing sequencer, a segment linker that
// assembles segments into a single traversable tilemap, a difficulty
// rewriter that fills variable slots, and a mechanic-aware reachability
// validator.
//
// Every stochastic decision flows from a single run seed through the RNG,
// so that (seed, preset, biome, level index, pool contents) deterministically
// reproduce the same generated level across platforms and runs.
package platform
