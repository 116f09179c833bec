package countdown

const (
	// LabelStart is the start control caption for an idle or running countdown.
	LabelStart = "Start"
	// LabelResume is the start control caption while paused.
	LabelResume = "Resume"
)

// View is what a presentation layer renders for a State.
type View struct {
	// FormattedRemaining is the remaining time as MM:SS.
	FormattedRemaining string
	// IsPaused selects the Resume label on the start control.
	IsPaused bool
	// StartLabel is the caption for the start control.
	StartLabel string
}

// View projects the state into its observable outputs.
func (s State) View() View {
	label := LabelStart
	if s.IsPaused() {
		label = LabelResume
	}

	return View{
		FormattedRemaining: FormatTime(s.Remaining),
		IsPaused:           s.IsPaused(),
		StartLabel:         label,
	}
}
