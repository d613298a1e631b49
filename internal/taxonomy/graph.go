package taxonomy

// Suggested returns the main categories that complement m. The graph is
// directed and not required to be symmetric. Unknown categories yield an
// empty result.
func (t Taxonomy) Suggested(m MainCategory) []MainCategory {
	return append([]MainCategory(nil), t.graph[m]...)
}
