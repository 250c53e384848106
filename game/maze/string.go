package maze

import "strings"

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Cols) + "\n")

	for row := 0; row < m.Rows; row++ {
		pos := CellPosition{Row: row}

		// Cell rows
		output.WriteString("|")
		for col := 0; col < m.Cols; col++ {
			pos.Col = col
			if m.IsOpen(pos, Right) {
				output.WriteString("    ")
			} else {
				output.WriteString("   |")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.Cols; col++ {
			pos.Col = col
			if m.IsOpen(pos, Down) {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
