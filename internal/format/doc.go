// Package format renders syntax trees back to source text.
//
// Printing is lossless: every token is emitted after its recorded leading
// trivia, so a tree that came straight from the parser reproduces its input
// byte for byte. There is no reformatting pass; whitespace and comments are
// whatever the tree carries.
package format
