package floorplan

import "strings"

// String draws the floorplan as ASCII art. Room cells are shaded with '.',
// the exit cell is marked 'E'.
func (fp *Floorplan) String() string {
	var sb strings.Builder
	sb.Grow((fp.width*3 + 2) * (fp.height*2 + 1))

	for y := 0; y < fp.height; y++ {
		for x := 0; x < fp.width; x++ {
			sb.WriteByte('+')
			if fp.HasWall(x, y, North) {
				sb.WriteString("--")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("+\n")
		for x := 0; x < fp.width; x++ {
			if fp.HasWall(x, y, West) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			switch {
			case fp.IsExitPosition(x, y):
				sb.WriteString("E ")
			case fp.IsInRoom(x, y):
				sb.WriteString("..")
			default:
				sb.WriteString("  ")
			}
		}
		if fp.HasWall(fp.width-1, y, East) {
			sb.WriteString("|\n")
		} else {
			sb.WriteString(" \n")
		}
	}
	for x := 0; x < fp.width; x++ {
		sb.WriteByte('+')
		if fp.HasWall(x, fp.height-1, South) {
			sb.WriteString("--")
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("+\n")

	return sb.String()
}
