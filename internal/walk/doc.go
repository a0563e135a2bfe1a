// Package walk implements a single-pass bottom-up rewriter over the syntax
// tree. A node's visitor runs only after all of its children were visited
// and rebuilt, so a rule sees already-rewritten children.
//
// The walker keeps an explicit ancestor path and a per-traversal signal
// slot: while a child is being visited it can leave an addressed note for a
// specific ancestor, which that ancestor consumes during its own post-order
// step. This is how a property checked at a leaf (an identifier behind a
// style flag) drives a rewrite that only its enclosing parenthesis node can
// perform.
//
// Rebuilding preserves identity: when no child of a node changed, the node
// itself is returned unchanged, so a traversal that rewrites nothing
// returns the input pointer and callers detect the no-op by comparison.
package walk
