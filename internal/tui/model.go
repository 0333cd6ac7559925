// Package tui renders the generator controls in the terminal and forwards
// key presses to a controller.Controller.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/passwiz/passwiz-go/internal/controller"
)

const (
	sliderWidth   = controller.MaxLength - controller.MinLength + 1
	noticeTimeout = 2 * time.Second
	copyTimeout   = time.Second
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeCopied
	noticeCopyFailed
)

// copyResultMsg carries the outcome of a clipboard write.
type copyResultMsg struct{ err error }

// clearNoticeMsg hides the notice it was scheduled for; seq guards against
// clearing a newer notice.
type clearNoticeMsg struct{ seq int }

// Model is the bubbletea model. It keeps no copy of the configuration or
// password; View reads them from the controller.
type Model struct {
	ctrl *controller.Controller
	keys keyMap
	help help.Model

	notice    noticeKind
	noticeSeq int
}

// New creates a Model driving ctrl.
func New(ctrl *controller.Controller) Model {
	return Model{
		ctrl: ctrl,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Run starts the terminal program and blocks until the user quits.
func Run(ctrl *controller.Controller, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(ctrl), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case copyResultMsg:
		return m.showCopyResult(msg.err)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = noticeNone
		}
		return m, nil

	case tea.KeyMsg:
		length := m.ctrl.Configuration().Length

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Shorter):
			m.ctrl.SetLength(length - 1)
		case key.Matches(msg, m.keys.Longer):
			m.ctrl.SetLength(length + 1)
		case key.Matches(msg, m.keys.Shortest):
			m.ctrl.SetLength(controller.MinLength)
		case key.Matches(msg, m.keys.Longest):
			m.ctrl.SetLength(controller.MaxLength)
		case key.Matches(msg, m.keys.Numbers):
			m.ctrl.ToggleDigits()
		case key.Matches(msg, m.keys.Symbols):
			m.ctrl.ToggleSymbols()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Copy):
			return m.copyPassword()
		}
	}

	return m, nil
}

// copyPassword snapshots the password on the update loop and writes it to
// the clipboard from a command, so a slow clipboard helper never blocks input.
func (m Model) copyPassword() (tea.Model, tea.Cmd) {
	write := m.ctrl.CopyFunc()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copyResultMsg{err: write(ctx)}
	}
}

func (m Model) showCopyResult(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.notice = noticeCopyFailed
	} else {
		m.notice = noticeCopied
	}
	m.noticeSeq++

	seq := m.noticeSeq
	return m, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m Model) View() string {
	state := m.ctrl.State()
	cfg := state.Configuration

	var b strings.Builder

	b.WriteString(titleStyle.Render("PassWiz"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Password Generator"))
	b.WriteString("\n\n")

	password := state.Password
	if password == "" {
		password = placeholderStyle.Render("Your secure password")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		passwordStyle.Render(password),
		" ",
		buttonStyle.Render("Copy"),
	))
	b.WriteString("\n\n")

	b.WriteString(renderSlider(cfg.Length))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Length: %d", cfg.Length)))
	b.WriteString("\n")
	b.WriteString(renderCheckbox(cfg.IncludeDigits, "Numbers"))
	b.WriteString("   ")
	b.WriteString(renderCheckbox(cfg.IncludeSymbols, "Special"))
	b.WriteString("\n")

	switch m.notice {
	case noticeCopied:
		b.WriteString("\n" + okStyle.Render("Copied!"))
	case noticeCopyFailed:
		b.WriteString("\n" + errStyle.Render("Clipboard unavailable, copy the password manually."))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return appStyle.Render(b.String())
}

func renderSlider(length int) string {
	filled := length - controller.MinLength + 1
	return sliderFilledStyle.Render(strings.Repeat("━", filled)) +
		sliderEmptyStyle.Render(strings.Repeat("─", sliderWidth-filled))
}

func renderCheckbox(checked bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	return labelStyle.Render(box + " " + label)
}
