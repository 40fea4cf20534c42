// Package bubbletea provides the Bubble Tea overlay widget for askbook.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hnasir/askbook"
)

// Run creates and runs the widget program. It blocks until the program
// exits. The context is used for graceful shutdown — when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ResultMsg delivers the outcome of an exchange to the widget. If the
// program has already exited when a slow reply arrives, the tea runtime
// drops the message.
type ResultMsg struct {
	Result askbook.Result
}

// ask issues one exchange against the answering service. The call owns no
// timeout and cannot be cancelled; the widget relies on the transport's
// defaults.
func ask(a askbook.Answerer, query string) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: a.Ask(context.Background(), query)}
	}
}
