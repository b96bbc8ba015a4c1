// Package kernel provides the reference compute kernels of the benchmark
// kit and the uniform contract they share.
//
// A kernel is a self-contained compute unit whose only state is a pair of
// in-memory scalar fields. It exposes three operations: a configuration
// setter, a compute operation, and a pure read accessor. The contract is
// deliberately minimal so that the same workload can be ported verbatim to
// other languages and the raw execution times compared.
//
// Guarantees every port must preserve:
//
//   - Identical iteration counts. The counter kernel performs exactly
//     `limit` loop iterations (zero when limit is negative); the Fibonacci
//     kernel advances a rolling pair from index 2 through n inclusive.
//   - Identical overflow behavior. All arithmetic is performed on a single
//     fixed-width signed 64-bit integer type. Go defines signed overflow as
//     two's-complement wrap-around, so results past F(92) wrap
//     deterministically rather than erroring.
//   - Observable work. Every compute operation returns its result and the
//     driver consumes it, so the loop cannot be discarded as dead code by
//     an optimizing compiler or runtime.
//
// Kernels are single-threaded and hold no synchronization. A driver that
// wants parallel load must construct one instance per goroutine. There are
// no error paths: every representable input produces a deterministic,
// possibly wrapped, result.
package kernel
