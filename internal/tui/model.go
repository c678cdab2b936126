// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a notification stays on screen.
const noticeTTL = 3 * time.Second

// triggerModel is the terminal trigger detector: a form of password fields
// where a key press on the focused field runs one decrypt cycle.
type triggerModel struct {
	ctx       context.Context
	services  *service.Services
	buildInfo models.AppBuildInfo

	fields  *fieldStore
	focused int
	spinner spinner.Model

	status    models.StatusReport
	hasStatus bool

	notice    string
	noticeErr bool
	noticeSeq int

	showBuildInfo bool
	quitByUser    bool
}

func newTriggerModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo) triggerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return triggerModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		fields:    &fieldStore{},
		spinner:   sp,
	}
}

func (m triggerModel) Init() tea.Cmd {
	return m.cmdCheckStatus()
}

func (m triggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case cycleDoneMsg:
		if msg.result.Success {
			return m.notify(fmt.Sprintf(app.MsgPasswordPasted, msg.result.Length), false)
		}
		return m.notify(humanizeBackendError(msg.result.Error), true)

	case statusMsg:
		m.status = msg.report
		m.hasStatus = true
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.notify(humanizeBackendError(msg.err.Error()), true)
		}
		return m.notify("Encrypted password copied to clipboard", false)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.fields.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m triggerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.focused = (m.focused + fieldCount - 1) % fieldCount
	case key.Matches(msg, keys.down):
		m.focused = (m.focused + 1) % fieldCount
	case key.Matches(msg, keys.trigger):
		// a field already in a decrypt round trip ignores repeated triggers
		if m.fields.state(m.focused) == models.CycleAwaitingDecrypt {
			return m, nil
		}
		target := fieldTarget{store: m.fields, index: m.focused}
		target.ObserveState("", models.CycleAwaitingDecrypt)
		return m, tea.Batch(m.cmdRunCycle(target), m.spinner.Tick)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyEncrypted()
	case key.Matches(msg, keys.status):
		return m, m.cmdCheckStatus()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m triggerModel) notify(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	m.noticeErr = isErr

	seq := m.noticeSeq
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

func (m triggerModel) cmdRunCycle(target fieldTarget) tea.Cmd {
	return func() tea.Msg {
		result := m.services.Cycle.Run(m.ctx, target)
		return cycleDoneMsg{index: target.index, result: result}
	}
}

func (m triggerModel) cmdCheckStatus() tea.Cmd {
	if m.services.Status == nil {
		return nil
	}
	return func() tea.Msg {
		return statusMsg{report: m.services.Status.Check(m.ctx)}
	}
}

func (m triggerModel) cmdCopyEncrypted() tea.Cmd {
	return func() tea.Msg {
		payload, err := m.services.Vault.CopyEncrypted(m.ctx)
		return copiedMsg{payload: payload, err: err}
	}
}

func (m triggerModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	for i := range fieldCount {
		b.WriteString(m.fieldLine(i))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeErr {
			b.WriteString(errorStyle.Render("✗ " + m.notice))
		} else {
			b.WriteString(successStyle.Render("✓ " + m.notice))
		}
	}

	hotKeys := "↑/↓: focus • enter/ctrl+v: decrypt clipboard • c: copy encrypted • s: status • v: about"
	return appStyle.Render(renderPage("CLIPBOARD DECRYPT", b.String(), hotKeys))
}

func (m triggerModel) statusLine() string {
	if !m.hasStatus {
		return helpStyle.Render("Checking backend...")
	}
	if !m.status.Connected {
		return errorStyle.Render(fmt.Sprintf(app.MsgCannotReachBackend, m.status.Address))
	}

	line := fmt.Sprintf("Backend %s • password: %s • encrypted: %s",
		m.status.Address, yesNo(m.status.Backend.HasPassword), yesNo(m.status.Backend.HasEncrypted))
	return successStyle.Render(line)
}

func (m triggerModel) fieldLine(i int) string {
	label := fmt.Sprintf("Password %d", i+1)
	value := fitText(m.fields.value(i), 32)

	var suffix string
	switch m.fields.state(i) {
	case models.CycleAwaitingDecrypt:
		suffix = " " + m.spinner.View() + " decrypting"
	case models.CycleAwaitingSanitize:
		suffix = " " + m.spinner.View() + " sanitizing"
	}

	line := fmt.Sprintf("%-11s [%-32s]%s", label, value, suffix)
	if i == m.focused {
		return focusedStyle.Render("> " + line)
	}
	return "  " + line
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
