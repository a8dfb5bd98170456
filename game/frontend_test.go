package game

// recordingFrontend captures the callbacks the engine fires during an
// action. onNotify, when set, runs inside the Notify call, which is the
// only window where a terminal board is fully revealed but not yet
// restarted.
type recordingFrontend struct {
	redraws       int
	notifications []string

	onNotify func()
}

func (ui *recordingFrontend) Redraw() {
	ui.redraws++
}

func (ui *recordingFrontend) Notify(title, message string) {
	ui.notifications = append(ui.notifications, title+": "+message)
	if ui.onNotify != nil {
		ui.onNotify()
	}
}
