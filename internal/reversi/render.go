package reversi

import "strings"

const (
	glyphCorner    = "🟦"
	glyphDark      = "🔵"
	glyphLight     = "⚪"
	glyphPlaceable = "▫️"
	glyphEmpty     = "◽"
)

var (
	columnHeaders = [Size]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣"}
	rowHeaders    = [Size]string{"🇦", "🇧", "🇨", "🇩", "🇪", "🇫", "🇬", "🇭"}
)

// Render - text grid of the board; empty cells the mover can take are marked with glyphPlaceable.
func (that *Reversi) Render() string {
	var sb strings.Builder

	sb.WriteString(glyphCorner)
	for _, header := range columnHeaders {
		sb.WriteString(header)
	}
	sb.WriteString("\n")

	for row := range Size {
		sb.WriteString(rowHeaders[row])

		for col := range Size {
			sb.WriteString(that.glyph(row, col))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Reversi) glyph(row, col int) string {
	switch that.Board[row][col] {
	case StoneDark:
		return glyphDark
	case StoneLight:
		return glyphLight
	case StoneNone:
		if that.CanPlace(row, col, that.Turn) {
			return glyphPlaceable
		}
	}

	return glyphEmpty
}

// Glyph - the marker used for a color in turn and result lines.
func Glyph(color Stone) string {
	if color == StoneLight {
		return glyphLight
	}

	return glyphDark
}
