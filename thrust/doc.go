// Package thrust encodes spaceship thrust symbols and converts between the
// combined 2-D thrust alphabet and two independent single-axis streams.
//
// What
//
//   - A thrust symbol is one digit '1'..'9' laid out like a numeric keypad:
//
//     7 8 9      (-1,+1) (0,+1) (+1,+1)
//     4 5 6  ->  (-1, 0) (0, 0) (+1, 0)
//     1 2 3      (-1,-1) (0,-1) (+1,-1)
//
//   - '5' means "no acceleration".
//   - An x-axis stream uses only {4,5,6}; a y-axis stream uses only {2,5,8}.
//   - Combine zips an x stream and a y stream into one combined stream.
//   - Decompose is the inverse; MirrorXToY reuses an x stream as a y stream.
//
// Why
//
//	The two axes of motion are independent: a plan for x and a plan for y can be
//	computed separately and then interleaved symbol by symbol.
//
// Unequal lengths
//
//	When the streams differ in length the longer tail is appended unchanged.
//	Since a tail symbol of an x stream is itself a valid pure-x thrust (and the same
//	for y), the tail means "only the longer axis keeps accelerating".
//
// Complexity
//
//   - Combine, Decompose, MirrorXToY: O(n) time, O(n) memory.
//
// Errors
//
//   - ErrInvalidDigit       a combined symbol outside '1'..'9'.
//   - ErrInvalidAxisSymbol  a symbol that does not belong to the expected axis alphabet.
package thrust
