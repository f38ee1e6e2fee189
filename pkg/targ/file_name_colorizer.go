package targ

import (
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"go":   tcell.ColorAqua,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"rs":   tcell.ColorOrange,
	"py":   tcell.ColorLightGreen,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"sh":   tcell.ColorGreen,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"toml": tcell.ColorLightYellow,
	"xml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"log":  tcell.ColorRosyBrown,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"png":  tcell.ColorMediumPurple,
	"jpg":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"tar":  tcell.ColorRed,
	"gz":   tcell.ColorRed,
	"tgz":  tcell.ColorRed,
	"zip":  tcell.ColorRed,
	"so":   tcell.ColorSalmon,
	"exe":  tcell.ColorSalmon,
}

// GetColorByFileExt picks a listing color by the file name extension.
func GetColorByFileExt(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
