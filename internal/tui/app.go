// Package tui is the interactive terminal form for a relocation pass. It only
// builds a MoveRequest and displays the MoveResult; the pass itself runs as a
// background relocator.Task.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taigrr/folder-archiver/internal/relocator"
	"github.com/taigrr/folder-archiver/internal/types"
)

// Runner starts a relocation pass in the background.
type Runner interface {
	Start(ctx context.Context, req types.MoveRequest, onDone func(types.MoveResult, error)) *relocator.Task
}

type screen int

const (
	screenForm screen = iota
	screenConfirm
	screenRunning
	screenDone
)

type appModel struct {
	ctx    context.Context
	runner Runner

	screen  screen
	form    formModel
	spinner spinner.Model
	pending types.MoveRequest

	formErr string
	task    *relocator.Task
	result  types.MoveResult
	runErr  error
	ran     bool

	// quitting is set when quit is pressed while a pass is moving folders;
	// the program exits once the pass reports back.
	quitting bool
}

func newAppModel(ctx context.Context, runner Runner, defaults types.MoveRequest) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return appModel{
		ctx:     ctx,
		runner:  runner,
		form:    newFormModel(defaults),
		spinner: s,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			if m.task != nil && !m.task.Finished() {
				m.quitting = true
				return m, nil
			}
			return m, tea.Quit
		}
	case relocationDoneMsg:
		m.screen = screenDone
		m.ran = true
		m.result = msg.result
		m.runErr = msg.err
		m.task = nil
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenDone:
		return m.updateDone(msg)
	case screenRunning:
		return m, nil
	default:
		return m.updateForm(msg)
	}
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.tab), key.Matches(k, keys.down):
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case key.Matches(k, keys.backtab), key.Matches(k, keys.up):
			m.form.setFocus(m.form.focus - 1)
			return m, nil
		case key.Matches(k, keys.toggle) && m.form.focus == fieldModified:
			m.form.modified = !m.form.modified
			return m, nil
		case key.Matches(k, keys.enter):
			req, err := m.form.request()
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			m.formErr = ""
			m.pending = req
			m.screen = screenConfirm
			return m, nil
		}
	}

	if m.form.focus < fieldModified {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.yes):
		m.screen = screenRunning
		m.task = m.runner.Start(m.ctx, m.pending, nil)
		return m, tea.Batch(m.spinner.Tick, waitForTask(m.task))
	case key.Matches(k, keys.no), key.Matches(k, keys.esc):
		m.screen = screenForm
	}
	return m, nil
}

func (m appModel) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.enter), key.Matches(k, keys.esc):
		m.screen = screenForm
	}
	return m, nil
}

func waitForTask(task *relocator.Task) tea.Cmd {
	return func() tea.Msg {
		result, err := task.Wait()
		return relocationDoneMsg{result: result, err: err}
	}
}

func (m appModel) View() string {
	switch m.screen {
	case screenConfirm:
		return appStyle.Render(overlayBoxStyle.Render("Confirm\n\nProceed with moving folders?\n\ny yes    n no"))
	case screenRunning:
		if m.quitting {
			return appStyle.Render(m.spinner.View() + " Moving folders... finishing the current pass before quitting.")
		}
		return appStyle.Render(m.spinner.View() + " Moving folders...")
	case screenDone:
		return appStyle.Render(overlayBoxStyle.Render(resultText(m.result, m.runErr) + "\n\nenter back  ctrl+c quit"))
	}

	out := m.form.View()
	if m.formErr != "" {
		out += "\n\n" + overlayBoxStyle.Render("Error\n\n"+m.formErr)
	}
	return appStyle.Render(out)
}

func resultText(result types.MoveResult, err error) string {
	if err != nil {
		return "Error\n\nAn error occurred: " + err.Error()
	}
	if result.DryRun {
		return fmt.Sprintf("Process Complete\n\nWould move %d folders.", result.Moved)
	}
	return fmt.Sprintf("Process Complete\n\nMoved %d folders.", result.Moved)
}

// Run shows the form until the user quits. It returns the outcome of the last
// pass, or ran=false if none was started. Run never returns while a pass is
// still moving folders.
func Run(ctx context.Context, runner Runner, defaults types.MoveRequest) (result types.MoveResult, ran bool, err error) {
	final, err := tea.NewProgram(newAppModel(ctx, runner, defaults), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	m, ok := final.(appModel)
	if ok {
		m = m.settle()
	}
	if err != nil {
		return m.result, m.ran, err
	}
	if !ok {
		return types.MoveResult{}, false, tea.ErrProgramKilled
	}
	return m.result, m.ran, m.runErr
}

// settle waits for a pass the program did not see finish, which happens when
// the program is killed through its context.
func (m appModel) settle() appModel {
	if m.task == nil {
		return m
	}
	m.result, m.runErr = m.task.Wait()
	m.ran = true
	return m
}
