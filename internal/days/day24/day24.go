// Package day24 solves "Never Tell Me The Odds".
package day24

import (
	"math/big"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Test area bounds for part 1.
const (
	AreaMin = 200000000000000
	AreaMax = 400000000000000
)

// Hailstone has a position and a velocity per nanosecond, as x, y, z.
type Hailstone struct {
	P, V [3]int
}

// ParseHail reads "19, 13, 30 @ -2,  1, -2" lines.
func ParseHail(input string) ([]Hailstone, error) {
	var out []Hailstone
	for i, line := range parse.Lines(input) {
		v := parse.Ints(line)
		if len(v) != 6 {
			return nil, puzzle.Errorf(i, "want 6 numbers, got %d", len(v))
		}
		var h Hailstone
		copy(h.P[:], v[:3])
		copy(h.V[:], v[3:])
		out = append(out, h)
	}
	return out, nil
}

// crossXY finds where the paths of a and b cross in the XY plane, ignoring
// z. ok is false for parallel paths and crossings in either stone's past.
func crossXY(a, b Hailstone) (x, y float64, ok bool) {
	det := a.V[0]*b.V[1] - a.V[1]*b.V[0]
	if det == 0 {
		return 0, 0, false
	}
	dx, dy := b.P[0]-a.P[0], b.P[1]-a.P[1]
	tn := dx*b.V[1] - dy*b.V[0]
	sn := dx*a.V[1] - dy*a.V[0]
	t := float64(tn) / float64(det)
	s := float64(sn) / float64(det)
	if t < 0 || s < 0 {
		return 0, 0, false
	}
	return float64(a.P[0]) + t*float64(a.V[0]), float64(a.P[1]) + t*float64(a.V[1]), true
}

// Crossings counts the pairs whose future XY paths cross inside
// [lo, hi] on both axes.
func Crossings(hail []Hailstone, lo, hi float64) int {
	n := 0
	for i := range hail {
		for j := i + 1; j < len(hail); j++ {
			x, y, ok := crossXY(hail[i], hail[j])
			if ok && x >= lo && x <= hi && y >= lo && y <= hi {
				n++
			}
		}
	}
	return n
}

// plane solves for the rock's position and velocity on axes a and b.
// For each stone i, (P - p_i) x (V - v_i) = 0 on that plane; the P x V term
// is shared, so subtracting stone 0's equation from stone j's leaves a
// linear equation in Pa, Pb, Va, Vb.
func plane(hail []Hailstone, a, b int) ([4]*big.Rat, error) {
	var rows [][]*big.Rat
	h0 := hail[0]
	for _, h := range hail[1:min(len(hail), 9)] {
		c := []int{
			h.V[b] - h0.V[b],
			h0.V[a] - h.V[a],
			h0.P[b] - h.P[b],
			h.P[a] - h0.P[a],
		}
		rhs := new(big.Int).Sub(mul(h.P[a], h.V[b]), mul(h.P[b], h.V[a]))
		rhs.Sub(rhs, mul(h0.P[a], h0.V[b]))
		rhs.Add(rhs, mul(h0.P[b], h0.V[a]))
		row := make([]*big.Rat, 5)
		for k, v := range c {
			row[k] = new(big.Rat).SetInt64(int64(v))
		}
		row[4] = new(big.Rat).SetInt(rhs)
		rows = append(rows, row)
	}
	return eliminate(rows)
}

func mul(x, y int) *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(x)), big.NewInt(int64(y)))
}

// eliminate runs Gauss-Jordan elimination on an augmented system with
// four unknowns. Extra rows are allowed; the system must have full rank.
func eliminate(m [][]*big.Rat) ([4]*big.Rat, error) {
	var out [4]*big.Rat
	for col := 0; col < 4; col++ {
		p := -1
		for i := col; i < len(m); i++ {
			if m[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return out, puzzle.Invalid("hailstones do not determine a unique throw")
		}
		m[col], m[p] = m[p], m[col]
		inv := new(big.Rat).Inv(m[col][col])
		for k := range m[col] {
			m[col][k].Mul(m[col][k], inv)
		}
		for i := range m {
			if i == col || m[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(m[i][col])
			for k := range m[i] {
				m[i][k].Sub(m[i][k], new(big.Rat).Mul(f, m[col][k]))
			}
		}
	}
	for k := range out {
		out[k] = m[k][4]
	}
	return out, nil
}

// Throw finds the rock position that hits every hailstone and returns the
// sum of its coordinates.
func Throw(hail []Hailstone) (int, error) {
	if len(hail) < 5 {
		return 0, puzzle.Invalid("need at least 5 hailstones, got %d", len(hail))
	}
	xy, err := plane(hail, 0, 1)
	if err != nil {
		return 0, err
	}
	xz, err := plane(hail, 0, 2)
	if err != nil {
		return 0, err
	}
	sum := new(big.Rat).Add(xy[0], xy[1])
	sum.Add(sum, xz[1])
	if !sum.IsInt() || !sum.Num().IsInt64() {
		return 0, puzzle.Invalid("throw position is not integral: %s", sum.RatString())
	}
	return int(sum.Num().Int64()), nil
}

// Part1 counts crossing pairs inside the test area.
func Part1(input string) (int, error) {
	hail, err := ParseHail(input)
	if err != nil {
		return 0, err
	}
	return Crossings(hail, AreaMin, AreaMax), nil
}

// Part2 adds up the coordinates of the rock's starting position.
func Part2(input string) (int, error) {
	hail, err := ParseHail(input)
	if err != nil {
		return 0, err
	}
	return Throw(hail)
}
