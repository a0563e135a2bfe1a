// Package rules contains the rewriting rules applied by the engine.
// Each rule is a walk.Visitor plus an applicability gate; rules decide
// which nodes change, package walk decides how the tree is traversed and
// rebuilt.
package rules
