package domain

import "fmt"

// LabelWidth is the column width labels are padded to, so that values line up.
const LabelWidth = 6

// Line is one row of demo output: a label and an already formatted value.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ComponentLabel builds the label for a single component read, e.g. "Vec2.x".
func ComponentLabel(size int, c Component) string {
	return fmt.Sprintf("%s.%s", VectorLabel(size), c)
}

// VectorLabel builds the label for a whole vector, e.g. "Vec4".
func VectorLabel(size int) string {
	return fmt.Sprintf("Vec%d", size)
}

// String renders the line as "<label padded to LabelWidth> | <value>".
func (l Line) String() string {
	return fmt.Sprintf("%-*s | %s", LabelWidth, l.Label, l.Value)
}
