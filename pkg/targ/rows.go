package targ

import (
	"github.com/datatug/targ/pkg/files"
	"github.com/datatug/targ/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*EntryRows)(nil)

const (
	nameColIndex     = 0
	sizeColIndex     = 1
	modifiedColIndex = 2
)

const (
	dirEmoji  = "📁"
	fileEmoji = "📄"
	linkEmoji = "🔗"
)

var columnTitles = []string{"File Path", "File Size", "Last Modified"}

// EntryRows renders a listing as table rows below a fixed header row.
type EntryRows struct {
	tview.TableContentReadOnly
	Entries []files.Entry
}

func NewEntryRows(entries []files.Entry) *EntryRows {
	return &EntryRows{Entries: entries}
}

func (r *EntryRows) GetRowCount() int {
	if len(r.Entries) == 0 {
		return 2
	}
	return len(r.Entries) + 1
}

func (r *EntryRows) GetColumnCount() int {
	return len(columnTitles)
}

func (r *EntryRows) GetCell(row, col int) *tview.TableCell {
	if col < 0 || col >= len(columnTitles) {
		return nil
	}
	if row == 0 {
		return r.getHeaderCell(col)
	}
	if len(r.Entries) == 0 {
		if row == 1 && col == nameColIndex {
			cell := tview.NewTableCell("[::i]No entries[::-]")
			cell.SetTextColor(Style.EmptyColor)
			cell.SetSelectable(false)
			return cell
		}
		return nil
	}
	i := row - 1
	if i < 0 || i >= len(r.Entries) {
		return nil
	}
	entry := r.Entries[i]

	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		cell = tview.NewTableCell(tview.Escape(entryDisplayName(entry)))
		cell.SetExpansion(2)
	case sizeColIndex:
		var sizeText string
		if f, ok := entry.(*files.FileEntry); ok {
			sizeText = fsutils.GetSizeShortText(f.Size())
		}
		cell = tview.NewTableCell(sizeText)
		cell.SetAlign(tview.AlignRight)
		cell.SetExpansion(1)
	case modifiedColIndex:
		cell = tview.NewTableCell(fsutils.GetModTimeText(entry.ModTime()))
		cell.SetAlign(tview.AlignRight)
		cell.SetExpansion(1)
	}
	cell.SetTextColor(entryColor(entry))
	cell.SetReference(entry)
	return cell
}

func (r *EntryRows) getHeaderCell(col int) *tview.TableCell {
	cell := tview.NewTableCell(columnTitles[col])
	cell.SetTextColor(Style.TableHeaderColor)
	cell.SetSelectable(false)
	if col != nameColIndex {
		cell.SetAlign(tview.AlignRight)
	}
	return cell
}

func entryDisplayName(entry files.Entry) string {
	switch e := entry.(type) {
	case *files.DirEntry:
		return dirEmoji + e.Name() + "/"
	case *files.FileEntry:
		if e.LinkName() != "" {
			return linkEmoji + e.Name() + " -> " + e.LinkName()
		}
		return fileEmoji + e.Name()
	default:
		return entry.Name()
	}
}

func entryColor(entry files.Entry) tcell.Color {
	switch e := entry.(type) {
	case *files.DirEntry:
		return Style.DirColor
	default:
		return GetColorByFileExt(e.Name())
	}
}
