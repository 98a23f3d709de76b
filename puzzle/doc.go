// Package puzzle reads and writes the text files exchanged with the solver.
//
// Puzzle files hold a whitespace-separated list of integers read pairwise as
// (x, y) target cells. Lines starting with '#' are comments.
//
//	1 -1
//	1 -3
//	2 -5
//
// Solution files hold one line, optionally prefixed with the problem name:
//
//	solve spaceship3 8136
//	8136
//
// Both grammars are built with participle on a small shared lexer.
package puzzle
