package header

import (
	"fmt"
)

// Markers framing the generated block.
const (
	BeginMarker = "// ==== Auto-generated by ResourceHeaderTool ===="
	EndMarker   = "// ==== End of auto-generated block ===="
)

// Assignment is a symbol with its newly assigned value.
type Assignment struct {
	Name     string
	NewValue int
}

// RenderBlock formats the generated block, names padded to a common column.
func RenderBlock(assignments []Assignment) []string {
	width := 0
	for _, a := range assignments {
		if len(a.Name) > width {
			width = len(a.Name)
		}
	}

	block := make([]string, 0, len(assignments)+2)
	block = append(block, BeginMarker)
	for _, a := range assignments {
		block = append(block, fmt.Sprintf("#define %-*s %d", width+1, a.Name, a.NewValue))
	}
	block = append(block, EndMarker)
	return block
}

// Rewrite returns the new header lines: the lines before the first
// definition, the generated block, then every later line that is not a
// definition. Without any definition line the block goes at the end.
func Rewrite(lines []string, assignments []Assignment) []string {
	isDefinition := make([]bool, len(lines))
	first := len(lines)
	for i, line := range lines {
		if IsDefinitionLine(line) {
			isDefinition[i] = true
			if first == len(lines) {
				first = i
			}
		}
	}

	block := RenderBlock(assignments)
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:first]...)
	out = append(out, block...)
	for i := first; i < len(lines); i++ {
		if !isDefinition[i] {
			out = append(out, lines[i])
		}
	}
	return out
}
