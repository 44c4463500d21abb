package render

// Segments splits a line strip into its connected segments as index pairs.
func Segments(n int) [][2]int {
	if n < 2 {
		return nil
	}
	out := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, [2]int{i - 1, i})
	}
	return out
}

// Quads splits a quad strip of n vertices into quads, each given as four
// indices in winding order. A trailing unpaired vertex is ignored.
func Quads(n int) [][4]int {
	pairs := n / 2
	if pairs < 2 {
		return nil
	}
	out := make([][4]int, 0, pairs-1)
	for p := 1; p < pairs; p++ {
		a, b := 2*(p-1), 2*(p-1)+1
		c, d := 2*p+1, 2*p
		out = append(out, [4]int{a, b, c, d})
	}
	return out
}

// Edges returns the outline of a quad strip: every rung plus both rails.
func Edges(n int) [][2]int {
	pairs := n / 2
	if pairs < 1 {
		return nil
	}
	out := make([][2]int, 0, 3*pairs)
	for p := 0; p < pairs; p++ {
		out = append(out, [2]int{2 * p, 2*p + 1})
		if p > 0 {
			out = append(out, [2]int{2 * (p - 1), 2 * p}, [2]int{2*(p-1) + 1, 2*p + 1})
		}
	}
	return out
}
