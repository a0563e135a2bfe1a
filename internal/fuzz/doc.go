// Package fuzztests houses Go fuzz harnesses for the early pipeline
// (source -> lexer -> parser) and the rewriting engine. The goal is to
// smoke test robustness: no panics on arbitrary input, lossless token
// streams, and convergence of the fixpoint loop.
package fuzztests
