package targ

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	BorderColor      tcell.Color
	TitleColor       tcell.Color
	TableHeaderColor tcell.Color
	DirColor         tcell.Color
	MetaLabelColor   tcell.Color
	HotkeyColor      tcell.Color
	EmptyColor       tcell.Color
	SelectedStyle    tcell.Style
}

var Style = Styles{
	BorderColor:      tcell.ColorCornflowerBlue,
	TitleColor:       tcell.ColorWhite,
	TableHeaderColor: tcell.ColorYellow,
	DirColor:         tcell.ColorLightSkyBlue,
	MetaLabelColor:   tcell.ColorGray,
	HotkeyColor:      tcell.ColorWhite,
	EmptyColor:       tcell.ColorGray,
	SelectedStyle:    tcell.StyleDefault.Bold(true).Reverse(true),
}
