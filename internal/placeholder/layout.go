package placeholder

import "github.com/csheth/wiki/internal/sections"

// Step is one Render call inside a section skeleton.
type Step struct {
	Kind  Kind
	Count int
}

var layouts = map[sections.ID][]Step{
	sections.Introduction: {
		{KindHeading, 1},
		{KindParagraph, 2},
	},
	sections.Biography: {
		{KindHeading, 1},
		{KindParagraph, 3},
	},
	sections.Education: {
		{KindHeading, 1},
		{KindParagraph, 1},
		{KindText, 3},
		{KindText, 3},
		{KindParagraph, 1},
	},
	sections.Skills: {
		{KindHeading, 1},
		{KindHeading, 1},
		{KindList, 1},
		{KindHeading, 1},
		{KindList, 1},
	},
	sections.Projects: {
		{KindHeading, 1},
		{KindText, 3},
		{KindText, 3},
		{KindText, 3},
	},
	sections.Experience: {
		{KindHeading, 1},
		{KindText, 3},
		{KindText, 3},
		{KindText, 3},
	},
	sections.Achievements: {
		{KindHeading, 1},
		{KindList, 1},
	},
	sections.References: {
		{KindHeading, 1},
		{KindParagraph, 1},
		{KindHeading, 1},
		{KindList, 1},
		{KindText, 2},
	},
}

// SectionLayout is the skeleton recipe shown for a section while loading.
func SectionLayout(id sections.ID) []Step {
	return append([]Step(nil), layouts[id]...)
}

// RenderSection expands a section's recipe into blocks.
func RenderSection(id sections.ID) []Block {
	var blocks []Block
	for _, step := range layouts[id] {
		blocks = append(blocks, Render(step.Kind, step.Count)...)
	}
	return blocks
}
