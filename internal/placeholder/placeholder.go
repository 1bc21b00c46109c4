// Package placeholder produces inert skeleton shapes that stand in for page
// content while it is loading.
package placeholder

import "fmt"

// Kind selects the shape of a placeholder unit.
type Kind string

const (
	KindText      Kind = "text"
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
)

// Line is a single skeleton bar. Width is a percentage of the available
// width; Height and Gap are in rows.
type Line struct {
	Width  int
	Height int
	Gap    int
}

// Block is one repeated unit: a single bar for text and heading, a group of
// three bars for paragraph and list.
type Block struct {
	Kind  Kind
	Lines []Line
}

var shapes = map[Kind][]Line{
	KindText:      {{Width: 100, Height: 1, Gap: 0}},
	KindHeading:   {{Width: 60, Height: 2, Gap: 1}},
	KindParagraph: {{Width: 100, Height: 1}, {Width: 100, Height: 1}, {Width: 80, Height: 1, Gap: 1}},
	KindList:      {{Width: 90, Height: 1}, {Width: 85, Height: 1}, {Width: 95, Height: 1, Gap: 1}},
}

// ParseKind is the strict counterpart to Render's leniency: it rejects
// names that Render would silently ignore.
func ParseKind(value string) (Kind, error) {
	kind := Kind(value)
	if _, ok := shapes[kind]; !ok {
		return "", fmt.Errorf("unknown placeholder kind %q", value)
	}
	return kind, nil
}

// Render returns count units of the given kind. Unknown kinds and
// non-positive counts yield an empty sequence.
func Render(kind Kind, count int) []Block {
	shape, ok := shapes[kind]
	if !ok || count <= 0 {
		return nil
	}
	blocks := make([]Block, 0, count)
	for i := 0; i < count; i++ {
		blocks = append(blocks, Block{
			Kind:  kind,
			Lines: append([]Line(nil), shape...),
		})
	}
	return blocks
}

// Rows is the number of terminal rows the blocks occupy, gaps included.
func Rows(blocks []Block) int {
	total := 0
	for _, block := range blocks {
		for _, line := range block.Lines {
			total += line.Height + line.Gap
		}
	}
	return total
}
