// Package numeric has the integer helpers the puzzles keep reaching for.
package numeric

// Abs returns |n|.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GCD returns the greatest common divisor of a and b (always >= 0).
func GCD(a, b int) int {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all values, or 0 for none.
func LCM(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	l := Abs(values[0])
	for _, v := range values[1:] {
		if l == 0 || v == 0 {
			return 0
		}
		l = l / GCD(l, v) * Abs(v)
	}
	return l
}
