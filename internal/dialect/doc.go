// Package dialect decides whether a file's content is the primary dialect
// this toolchain rewrites, or an embedded foreign syntax (Python-, Rust-,
// Go-, or JavaScript-flavoured) that must be passed through untouched.
//
// Detection is intentionally lightweight and never changes parsing
// behavior; it only gates whether rewriting passes run at all.
package dialect
