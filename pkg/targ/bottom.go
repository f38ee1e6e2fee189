package targ

import (
	"fmt"
	"strings"

	"github.com/datatug/targ/pkg/targ/ftui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type bottom struct {
	*tview.TextView
	menuItems []ftui.MenuItem
}

func newBottom(b *Browser) *bottom {
	bt := &bottom{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
		menuItems: getMenuItems(b),
	}
	bt.SetHighlightedFunc(bt.highlighted)
	bt.render()
	return bt
}

func getMenuItems(b *Browser) []ftui.MenuItem {
	return []ftui.MenuItem{
		{Title: "↑/k Up", HotKeys: []string{"k"}, Action: func() { b.Do(ActionMoveUp) }},
		{Title: "↓/j Down", HotKeys: []string{"j"}, Action: func() { b.Do(ActionMoveDown) }},
		{Title: "Enter/l Open", HotKeys: []string{"l"}, Action: func() { b.Do(ActionEnter) }},
		{Title: "Backspace/h Back", HotKeys: []string{"h"}, Action: func() { b.Do(ActionBack) }},
		{Title: "q Quit", HotKeys: []string{"q"}, Action: func() { b.Do(ActionQuit) }},
	}
}

func (b *bottom) render() {
	b.SetText(b.renderMenuItems(b.menuItems))
}

func (b *bottom) renderMenuItems(menuItems []ftui.MenuItem) string {
	const separator = " ┊ "
	titles := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := mi.Title
		if len(mi.HotKeys) > 0 {
			key := mi.HotKeys[0]
			hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor, key)
			title = strings.Replace(title, key, hotkeyText, 1)
			title = fmt.Sprintf(`["%s"]%s[""]`, key, title)
		}
		titles = append(titles, title)
	}
	return " " + strings.Join(titles, separator)
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	for _, mi := range b.menuItems {
		if len(mi.HotKeys) > 0 && mi.HotKeys[0] == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}
