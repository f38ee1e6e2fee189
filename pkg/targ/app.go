package targ

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the browser drives.
type App interface {
	Run() error
	SetRoot(root tview.Primitive, fullscreen bool)
	SetFocus(p tview.Primitive)
	Stop()
}

type AppMethod func(a *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{
		run:      func() error { return nil },
		setRoot:  func(tview.Primitive, bool) {},
		setFocus: func(tview.Primitive) {},
		stop:     func() {},
	}
	if app != nil {
		a.run = app.Run
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.setFocus = func(p tview.Primitive) {
			_ = app.SetFocus(p)
		}
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithRun(run func() error) AppMethod {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppMethod {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppMethod {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithStop(stop func()) AppMethod {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	run      func() error
	setRoot  func(root tview.Primitive, fullscreen bool)
	setFocus func(p tview.Primitive)
	stop     func()
}

func (a appProxy) Run() error {
	return a.run()
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	a.setRoot(root, fullscreen)
}

func (a appProxy) SetFocus(p tview.Primitive) {
	a.setFocus(p)
}

func (a appProxy) Stop() {
	a.stop()
}
