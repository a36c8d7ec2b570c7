package cli

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

type (
	spinnerTickMsg struct{}
	spinnerDoneMsg struct{}
)

// spinnerModel is the bubbletea model for the progress indicator shown
// while a long-running step runs.
type spinnerModel struct {
	message string
	frame   int
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return spinnerTick()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case spinnerTickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, spinnerTick()
	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	frame := spinnerFrames[m.frame%len(spinnerFrames)]
	return styleIconSpinner.Render(frame) + " " + StyleDim.Render(m.message)
}

// withSpinner runs fn while a spinner with message is drawn on w. It returns
// fn's error; the spinner stops when fn returns or ctx is cancelled.
func withSpinner(ctx context.Context, w io.Writer, message string, fn func() error) error {
	p := tea.NewProgram(spinnerModel{message: message},
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- fn()
		p.Send(spinnerDoneMsg{})
	}()

	_, runErr := p.Run()
	err := <-errc
	if err == nil && runErr != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
