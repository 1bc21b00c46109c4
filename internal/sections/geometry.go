package sections

// Geometry is the vertical extent of a rendered section.
type Geometry struct {
	Top    int
	Height int
}

// Contains reports whether pos lies in [Top, Top+Height).
func (g Geometry) Contains(pos int) bool {
	return g.Top <= pos && pos < g.Top+g.Height
}

// GeometryProvider looks up where a section is currently rendered. The
// second return value is false when the section is not in the rendered tree.
type GeometryProvider interface {
	Geometry(id ID) (Geometry, bool)
}

// GeometryMap is a literal GeometryProvider.
type GeometryMap map[ID]Geometry

// Geometry implements GeometryProvider.
func (m GeometryMap) Geometry(id ID) (Geometry, bool) {
	g, ok := m[id]
	return g, ok
}

// Locate scans the sections in display order and returns the first one
// whose extent contains pos. Later sections are not consulted once a match
// is found, so overlapping extents resolve to the earliest section.
func Locate(provider GeometryProvider, pos int) (ID, bool) {
	if provider == nil {
		return "", false
	}
	for _, id := range order {
		g, ok := provider.Geometry(id)
		if !ok {
			continue
		}
		if g.Contains(pos) {
			return id, true
		}
	}
	return "", false
}
