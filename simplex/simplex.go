package simplex

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// New builds a canonical Simplex from the given vertices,
// sorting and deduplicating them.
//
// Complexity: O(k log k).
func New(vertices ...int) Simplex {
	return Normalize(vertices)
}

// Normalize returns the canonical form of vertices: sorted ascending
// with duplicates removed. The input slice is not modified.
//
// Complexity: O(k log k).
func Normalize(vertices []int) Simplex {
	if len(vertices) == 0 {
		return Simplex{}
	}
	out := make(Simplex, len(vertices))
	copy(out, vertices)
	sort.Ints(out)
	// Compact in place: keep the first of each run of equal vertices.
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}

	return out[:w]
}

// Dimension returns len(s)-1; the empty simplex reports -1.
//
// Complexity: O(1).
func (s Simplex) Dimension() int {
	return len(s) - 1
}

// Equal reports whether s and t have identical canonical sequences.
//
// Complexity: O(k).
func (s Simplex) Equal(t Simplex) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Faces returns every codimension-1 face of s, one per removed vertex,
// in ascending removed-vertex order. A vertex or the empty simplex has
// no faces.
//
// Complexity: O(k²). Memory: O(k²).
func (s Simplex) Faces() []Simplex {
	if len(s) < 2 {
		return nil
	}
	faces := make([]Simplex, len(s))
	for i := range s {
		f := make(Simplex, 0, len(s)-1)
		f = append(f, s[:i]...)
		f = append(f, s[i+1:]...)
		faces[i] = f
	}

	return faces
}

// KFaces returns every k-dimensional face of s — all (k+1)-element
// subsets of its vertex set — in lexicographic order. Out-of-range k
// yields nil.
//
// Enumeration is iterative (combination-index generator), never
// recursive.
//
// Complexity: O(C(k_s+1, k+1)·k).
func (s Simplex) KFaces(k int) []Simplex {
	size := k + 1
	if size < 1 || size > len(s) {
		return nil
	}
	gen := combin.NewCombinationGenerator(len(s), size)
	idx := make([]int, size)
	var out []Simplex
	for gen.Next() {
		gen.Combination(idx)
		f := make(Simplex, size)
		for i, j := range idx {
			f[i] = s[j]
		}
		out = append(out, f)
	}

	return out
}

// Boundary returns the signed boundary chain of s: one term per vertex
// removed in ascending order, signs alternating starting at +1.
//
// The fundamental invariant is ∂∂ = 0: taking the boundary of every
// term's face and summing signed contributions per resulting face
// always cancels to zero.
//
// Complexity: O(k²).
func (s Simplex) Boundary() []BoundaryTerm {
	faces := s.Faces()
	if faces == nil {
		return nil
	}
	chain := make([]BoundaryTerm, len(faces))
	sign := 1
	for i, f := range faces {
		chain[i] = BoundaryTerm{Sign: sign, Face: f}
		sign = -sign
	}

	return chain
}

// IsFaceOf reports whether s is a face of t — a subset test over the
// two canonical vertex sequences. Every simplex is a face of itself;
// the empty simplex is a face of everything.
//
// Complexity: O(k_s + k_t).
func (s Simplex) IsFaceOf(t Simplex) bool {
	if len(s) > len(t) {
		return false
	}
	i := 0
	for _, v := range t {
		if i == len(s) {
			break
		}
		if s[i] == v {
			i++
		}
	}

	return i == len(s)
}
