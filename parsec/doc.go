// Package parsec is a small parser-combinator toolkit over token slices.
//
// A parser is any function with the shape
//
//	func(input []T, offset int) (next int, out O, err error)
//
// that either succeeds, returning the offset after the consumed input and a
// value, or fails with an error (normally an *Error) and consumes nothing.
// Combinators build new parsers from existing ones and never mutate shared
// state, so a parser value can be reused and called concurrently.
//
// Example:
//
//	digit := parsec.Token("digit", func(r rune) (int, bool) {
//		return int(r - '0'), r >= '0' && r <= '9'
//	}, nil)
//	number := parsec.Map(parsec.Many(digit), func(ds []int) int {
//		n := 0
//		for _, d := range ds {
//			n = n*10 + d
//		}
//		return n
//	})
//	n, err := parsec.Parse(number, []rune("42"))
package parsec
