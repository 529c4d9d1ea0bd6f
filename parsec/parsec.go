package parsec

// Parser consumes input starting at offset. On success it returns the offset
// after the consumed elements; on failure it returns an error and the caller
// continues from its own, unchanged offset.
type Parser[T, O any] func(input []T, offset int) (int, O, error)

// Pair is the output of And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Parse runs p from the start of input.
func Parse[T, O any](p Parser[T, O], input []T) (O, error) {
	_, out, err := p(input, 0)
	return out, err
}

// Token matches exactly one input element. match reports the element's value
// and whether it is acceptable; describe renders a rejected element for the
// error (fmt.Sprint is used when it is nil).
func Token[T, O any](expected string, match func(T) (O, bool), describe func(T) string) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		var zero O
		if offset >= len(input) {
			return offset, zero, Fail(expected, input, offset, describe)
		}
		out, ok := match(input[offset])
		if !ok {
			return offset, zero, Fail(expected, input, offset, describe)
		}
		return offset + 1, out, nil
	}
}

// Map transforms the output of p. Errors pass through unchanged.
func Map[T, A, B any](p Parser[T, A], apply func(A) B) Parser[T, B] {
	return func(input []T, offset int) (int, B, error) {
		next, out, err := p(input, offset)
		if err != nil {
			var zero B
			return offset, zero, err
		}
		return next, apply(out), nil
	}
}

// And runs p and then q from where p stopped.
func And[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Pair[A, B]] {
	return func(input []T, offset int) (int, Pair[A, B], error) {
		next, first, err := p(input, offset)
		if err != nil {
			return offset, Pair[A, B]{}, err
		}
		next, second, err := q(input, next)
		if err != nil {
			return offset, Pair[A, B]{}, err
		}
		return next, Pair[A, B]{First: first, Second: second}, nil
	}
}

// Prefixed runs prefix, discards its output, then runs p.
func Prefixed[T, O, X any](p Parser[T, O], prefix Parser[T, X]) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		next, _, err := prefix(input, offset)
		if err != nil {
			var zero O
			return offset, zero, err
		}
		next, out, err := p(input, next)
		if err != nil {
			return offset, out, err
		}
		return next, out, nil
	}
}

// Suffixed runs p, then suffix, and keeps only p's output.
func Suffixed[T, O, X any](p Parser[T, O], suffix Parser[T, X]) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		next, out, err := p(input, offset)
		if err != nil {
			return offset, out, err
		}
		next, _, err = suffix(input, next)
		if err != nil {
			var zero O
			return offset, zero, err
		}
		return next, out, nil
	}
}

// Or tries each parser at the same offset and returns the first success.
// When every branch fails the last branch's error is returned.
func Or[T, O any](ps ...Parser[T, O]) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		var (
			zero O
			err  error
		)
		for _, p := range ps {
			var (
				next int
				out  O
			)
			next, out, err = p(input, offset)
			if err == nil {
				return next, out, nil
			}
		}
		if err == nil {
			err = Fail[T]("one of no alternatives", input, offset, nil)
		}
		return offset, zero, err
	}
}

// Many applies p until it fails. It needs at least one success; otherwise
// the error of the first attempt is returned.
func Many[T, O any](p Parser[T, O]) Parser[T, []O] {
	return func(input []T, offset int) (int, []O, error) {
		var outs []O
		cur := offset
		for {
			next, out, err := p(input, cur)
			if err != nil {
				if len(outs) == 0 {
					return offset, nil, err
				}
				return cur, outs, nil
			}
			outs = append(outs, out)
			if next == cur {
				// p succeeded without consuming; stop instead of looping forever.
				return cur, outs, nil
			}
			cur = next
		}
	}
}

// Optional succeeds with the zero value when p fails.
func Optional[T, O any](p Parser[T, O]) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		next, out, err := p(input, offset)
		if err != nil {
			var zero O
			return offset, zero, nil
		}
		return next, out, nil
	}
}

// Pure succeeds with v without consuming input.
func Pure[T, O any](v O) Parser[T, O] {
	return func(_ []T, offset int) (int, O, error) {
		return offset, v, nil
	}
}

// End succeeds only when no input is left.
func End[T any]() Parser[T, struct{}] {
	return func(input []T, offset int) (int, struct{}, error) {
		if offset < len(input) {
			return offset, struct{}{}, Fail[T]("end of input", input, offset, nil)
		}
		return offset, struct{}{}, nil
	}
}

// Peek runs p but does not consume what it matched.
func Peek[T, O any](p Parser[T, O]) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		_, out, err := p(input, offset)
		return offset, out, err
	}
}

// Inspect calls observe with every successful output of p.
func Inspect[T, O any](p Parser[T, O], observe func(O)) Parser[T, O] {
	return func(input []T, offset int) (int, O, error) {
		next, out, err := p(input, offset)
		if err == nil {
			observe(out)
		}
		return next, out, err
	}
}
