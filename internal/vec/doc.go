// Package vec implements the block kernels behind the bulk encode and
// decode paths.
//
// The kernels are SIMD-within-a-register: one 64-bit little-endian word
// load or store per value, branchless reconstruction driven by first-byte
// lookup tables, and a packed fast path that moves a whole block in a
// single store when every value in it fits in one byte. A per-architecture
// init picks the block width the kernels run at: Level256 (8-lane uint32
// blocks, amd64 with AVX2), Level128 (4-lane blocks, amd64 baseline and
// arm64 with ASIMD), or LevelScalar (no kernels; the root package loops
// over the scalar codec).
//
// Kernels never fail. They stop early at buffer tails and at encodings
// they do not handle (length-prefixed payloads wider than the element
// type) and report how far they got; the scalar codec finishes the run and
// produces any errors. This keeps every error path in one place and makes
// the kernel output byte-identical to the scalar encoder by construction.
package vec
