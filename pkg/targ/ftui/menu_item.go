package ftui

// MenuItem is a hotkey hint shown in the bottom bar.
// The first hotkey is highlighted within the title when present there.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}
