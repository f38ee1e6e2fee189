package targ

import (
	"testing"
	"time"

	"github.com/datatug/targ/pkg/files"
	"github.com/rivo/tview"
)

var testModTime = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

// newTestForest returns:
//
//	docs/
//	  readme.md
//	  guide/
//	bin
//	link -> bin
func newTestForest() []files.Entry {
	readme := files.NewFileEntry("docs/readme.md",
		files.Size(9), files.ModTime(testModTime), files.Mode(0o644), files.Head([]byte("# readme\n")))
	guide := files.NewDirEntry("docs/guide", nil, files.ModTime(testModTime))
	docs := files.NewDirEntry("docs", []files.Entry{readme, guide}, files.ModTime(testModTime))
	bin := files.NewFileEntry("bin",
		files.Size(2048), files.ModTime(testModTime), files.Mode(0o755), files.Head([]byte{0x7f, 'E', 'L', 'F', 0, 1}))
	link := files.NewFileEntry("link", files.ModTime(testModTime), files.LinkName("bin"))
	return []files.Entry{docs, bin, link}
}

type testApp struct {
	App
	root    tview.Primitive
	focused tview.Primitive
	stopped int
}

func newTestApp() *testApp {
	ta := &testApp{}
	ta.App = NewApp(nil,
		WithSetRoot(func(root tview.Primitive, fullscreen bool) {
			ta.root = root
		}),
		WithSetFocus(func(p tview.Primitive) {
			ta.focused = p
		}),
		WithStop(func() {
			ta.stopped++
		}),
	)
	return ta
}

func newTestBrowser(t *testing.T) (*Browser, *testApp) {
	t.Helper()
	app := newTestApp()
	return NewBrowser(app, "test.tar", newTestForest()), app
}
