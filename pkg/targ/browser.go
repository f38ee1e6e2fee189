package targ

import (
	"fmt"

	"github.com/datatug/targ/pkg/files"
	"github.com/datatug/targ/pkg/fsutils"
	"github.com/datatug/targ/pkg/navigator"
	"github.com/datatug/targ/pkg/tree"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Browser shows the listing of the current archive directory next to a
// preview of the selected entry and a hotkey bar.
type Browser struct {
	*tview.Flex
	app         App
	archiveName string
	summary     tree.Summary
	state       *navigator.State
	logger      *zap.Logger

	table     *tview.Table
	previewer *previewer
	bottom    *bottom
}

type BrowserOption func(b *Browser)

func WithBrowserLogger(logger *zap.Logger) BrowserOption {
	return func(b *Browser) {
		b.logger = logger
	}
}

func NewBrowser(app App, archiveName string, forest []files.Entry, o ...BrowserOption) *Browser {
	b := &Browser{
		app:         app,
		archiveName: archiveName,
		summary:     tree.Summarize(forest),
	}
	for _, opt := range o {
		opt(b)
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	b.state = navigator.New(forest, navigator.WithLogger(b.logger))

	b.table = tview.NewTable()
	b.table.SetBorder(true)
	b.table.SetBorderColor(Style.BorderColor)
	b.table.SetTitleColor(Style.TitleColor)
	b.table.SetSelectable(true, false)
	b.table.SetFixed(1, 0)
	b.table.SetSelectedStyle(Style.SelectedStyle)
	b.table.SetInputCapture(b.inputCapture)
	b.table.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		return action, nil
	})

	b.previewer = newPreviewer()
	b.bottom = newBottom(b)

	columns := tview.NewFlex()
	columns.AddItem(b.table, 0, 3, true)
	columns.AddItem(b.previewer, 0, 2, false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow)
	b.AddItem(columns, 0, 1, true)
	b.AddItem(b.bottom, 1, 0, false)

	b.render()
	return b
}

// State exposes the navigation state for read access.
func (b *Browser) State() *navigator.State {
	return b.state
}

func (b *Browser) Table() *tview.Table {
	return b.table
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	b.Do(ActionForKey(event))
	return nil
}

// Do applies an action and redraws the listing when the state changed.
func (b *Browser) Do(action Action) {
	var changed bool
	switch action {
	case ActionMoveUp:
		changed = b.state.MoveUp()
	case ActionMoveDown:
		changed = b.state.MoveDown()
	case ActionEnter:
		changed = b.state.Enter()
	case ActionBack:
		changed = b.state.GoBack()
	case ActionQuit:
		b.logger.Debug("quit")
		b.app.Stop()
		return
	default:
		return
	}
	if changed {
		b.render()
	}
}

func (b *Browser) render() {
	children := b.state.Children()
	b.table.SetContent(NewEntryRows(children))
	b.table.SetTitle(b.title())

	selected, ok := b.state.Selected()
	if !ok {
		b.table.Select(0, 0)
		b.table.ScrollToBeginning()
		b.previewer.SetEmpty("Empty directory")
		return
	}
	b.table.Select(selected+1, 0)
	b.previewer.Preview(children[selected])
}

func (b *Browser) title() string {
	scope := "/" + b.state.Scope()
	return tview.Escape(fmt.Sprintf(" %s: %s [%d dirs, %d files, %s] ",
		b.archiveName, scope, b.summary.Dirs, b.summary.Files, fsutils.GetSizeShortText(b.summary.Size)))
}
