package header

import (
	"regexp"
	"strconv"
)

// definitionLine matches "#define NAME 123 ..." with optional blanks around '#'.
var definitionLine = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_]\w*)\s+([0-9]+)\b.*$`)

// Definition is one numeric symbol declared by the header.
type Definition struct {
	Name  string
	Value int
	// Line is the zero-based index of the declaring line.
	Line int
}

// Parsed is the result of parsing a header.
type Parsed struct {
	// Definitions lists every definition line in file order, duplicates included.
	Definitions []Definition
	// LineIndex maps each name to the line of its last declaration.
	LineIndex map[string]int
}

// ParseLine extracts the definition declared by line, if any.
// A value that does not fit an int makes the line a non-definition.
func ParseLine(line string) (name string, value int, ok bool) {
	m := definitionLine.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	value, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], value, true
}

// IsDefinitionLine reports whether line declares a numeric symbol.
func IsDefinitionLine(line string) bool {
	_, _, ok := ParseLine(line)
	return ok
}

// Parse extracts the numeric definitions of a header given as lines.
// Lines that are not definitions are ignored.
func Parse(lines []string) (*Parsed, error) {
	parsed := &Parsed{LineIndex: make(map[string]int)}

	for i, line := range lines {
		name, value, ok := ParseLine(line)
		if !ok {
			continue
		}
		parsed.Definitions = append(parsed.Definitions, Definition{Name: name, Value: value, Line: i})
		parsed.LineIndex[name] = i
	}

	if len(parsed.Definitions) == 0 {
		return nil, ErrNoDefinitionsFound
	}

	return parsed, nil
}

// Unique returns one definition per name, keeping the last declaration,
// in file order of the surviving lines.
func (p *Parsed) Unique() []Definition {
	unique := make([]Definition, 0, len(p.LineIndex))
	for _, d := range p.Definitions {
		if p.LineIndex[d.Name] == d.Line {
			unique = append(unique, d)
		}
	}
	return unique
}

// Duplicates returns the names declared more than once, in order of first
// redeclaration.
func (p *Parsed) Duplicates() []string {
	seen := make(map[string]bool, len(p.Definitions))
	reported := make(map[string]bool)
	var dups []string
	for _, d := range p.Definitions {
		if seen[d.Name] && !reported[d.Name] {
			dups = append(dups, d.Name)
			reported[d.Name] = true
		}
		seen[d.Name] = true
	}
	return dups
}
