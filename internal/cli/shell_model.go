package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/izof/internal/app"
	"github.com/alexanderramin/izof/internal/cli/formatter"
	"github.com/alexanderramin/izof/internal/importer"
	"github.com/alexanderramin/izof/internal/llm"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modeEdit   shellMode = iota // Input editor and report.
	modeAPIKey                  // huh API key form is active.
	modeHelp                    // Usage panel.
)

// shellFocus is the pane that receives plain keys in modeEdit.
type shellFocus int

const (
	focusInput shellFocus = iota
	focusReport
)

const (
	defaultShellWidth  = 80
	defaultShellHeight = 30
	inputHeight        = 8
	minReportHeight    = 5
	// Rows used by the banner, section titles, status and key hints.
	shellChromeRows = 10
)

// analysisDoneMsg carries the controller result of one analyze run.
type analysisDoneMsg struct {
	session app.Session
	err     error
}

type shellKeyMap struct {
	Analyze     key.Binding
	Example     key.Binding
	Reset       key.Binding
	APIKey      key.Binding
	SwitchFocus key.Binding
	Detail      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newShellKeyMap() shellKeyMap {
	return shellKeyMap{
		Analyze:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "분석하기")),
		Example:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "예시")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "초기화")),
		APIKey:      key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "API 키")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "입력/결과 전환")),
		Detail:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "상세 리포트")),
		Help:        key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "도움말")),
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "종료")),
	}
}

// shellModel is the bubbletea Model for the interactive analyzer.
type shellModel struct {
	// bubbletea components
	input   textarea.Model
	report  viewport.Model
	spinner spinner.Model
	help    help.Model
	form    *huh.Form // active API key form (nil outside modeAPIKey)
	keys    shellKeyMap

	width  int
	height int

	// shell state
	app        *App
	ctx        context.Context
	session    app.Session
	credential string
	apiKey     *string // bound to the form input; survives model copies

	mode  shellMode
	focus shellFocus
	busy  bool

	// transient feedback
	err    error
	status string

	reportContent string
	quitting      bool
}

func newShellModel(ctx context.Context, a *App) shellModel {
	ta := textarea.New()
	ta.Placeholder = importer.ExampleInput
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	ta.SetWidth(defaultShellWidth - 2)
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)

	vp := viewport.New(defaultShellWidth, minReportHeight)
	vp.MouseWheelEnabled = true

	if ctx == nil {
		ctx = context.Background()
	}

	return shellModel{
		input:   ta,
		report:  vp,
		spinner: sp,
		help:    help.New(),
		keys:    newShellKeyMap(),
		width:   defaultShellWidth,
		height:  defaultShellHeight,
		app:     a,
		ctx:     ctx,
		session: a.Session.Snapshot(),
		apiKey:  new(string),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshReport()
		return m, nil

	case analysisDoneMsg:
		return m.handleAnalysisDone(msg), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mode == modeEdit && m.session.HasReport() {
			var cmd tea.Cmd
			m.report, cmd = m.report.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Forward other messages (field navigation, cursor blink) to the
	// component that owns them.
	if m.mode == modeAPIKey && m.form != nil {
		return m.updateForm(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeAPIKey:
		if msg.Type == tea.KeyEsc {
			m.closeForm()
			m.status = "API 키 입력을 취소했습니다."
			return m, m.focusCmd()
		}
		return m.updateForm(msg)

	case modeHelp:
		if msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Help) {
			m.mode = modeEdit
		}
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Analyze):
		return m.startAnalysis()

	case m.busy:
		// Only quit and analyze keys are handled while the model is queried.
		return m, nil

	case key.Matches(msg, m.keys.Example):
		m.input.SetValue(strings.TrimRight(importer.ExampleInput, "\n"))
		m.err = nil
		m.status = "예시 데이터를 불러왔습니다."
		return m, m.setFocus(focusInput)

	case key.Matches(msg, m.keys.Reset):
		m.session = m.app.Session.Reset()
		m.input.Reset()
		m.err = nil
		m.status = "입력과 분석 결과를 초기화했습니다."
		m.refreshReport()
		return m, m.setFocus(focusInput)

	case key.Matches(msg, m.keys.APIKey):
		return m.openForm()

	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == focusInput && m.session.HasReport() {
			return m, m.setFocus(focusReport)
		}
		return m, m.setFocus(focusInput)

	case msg.Type == tea.KeyF1:
		m.mode = modeHelp
		return m, nil
	}

	if m.focus == focusReport {
		switch {
		case key.Matches(msg, m.keys.Detail):
			m.toggleDetail()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.mode = modeHelp
			return m, nil
		}
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ── analysis ─────────────────────────────────────────────────────────────────

func (m shellModel) startAnalysis() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.err = nil
	m.status = ""
	m.busy = true
	return m, tea.Batch(m.analyzeCmd(m.input.Value(), m.credential), m.spinner.Tick)
}

func (m shellModel) analyzeCmd(text, credential string) tea.Cmd {
	sess := m.app.Session
	ctx := m.ctx
	return func() tea.Msg {
		s, err := sess.Analyze(ctx, app.AnalyzeRequest{Text: text, Credential: credential})
		return analysisDoneMsg{session: s, err: err}
	}
}

func (m shellModel) handleAnalysisDone(msg analysisDoneMsg) shellModel {
	m.busy = false
	m.session = msg.session
	m.err = msg.err
	m.refreshReport()

	if msg.err != nil {
		if errors.Is(msg.err, llm.ErrMissingCredential) {
			m.status = "ctrl+k 로 API 키를 입력하세요."
		}
		return m
	}
	m.status = "분석이 완료되었습니다. d 를 눌러 상세 리포트를 확인하세요."
	m.setFocus(focusReport)
	return m
}

func (m *shellModel) toggleDetail() {
	s, err := m.app.Session.ToggleDetail()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.session = s
	m.refreshReport()
	m.report.GotoTop()
}

// ── API key form ─────────────────────────────────────────────────────────────

func (m shellModel) openForm() (tea.Model, tea.Cmd) {
	*m.apiKey = ""
	m.form = apiKeyForm(m.apiKey)
	m.mode = modeAPIKey
	m.input.Blur()
	return m, m.form.Init()
}

func (m shellModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.credential = strings.TrimSpace(*m.apiKey)
		m.closeForm()
		m.err = nil
		m.status = "API 키가 설정되었습니다."
		return m, tea.Batch(cmd, m.focusCmd())
	case huh.StateAborted:
		m.closeForm()
		return m, m.focusCmd()
	}
	return m, cmd
}

func (m *shellModel) closeForm() {
	m.form = nil
	m.mode = modeEdit
}

// ── layout ───────────────────────────────────────────────────────────────────

func (m *shellModel) setFocus(f shellFocus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *shellModel) focusCmd() tea.Cmd {
	return m.setFocus(m.focus)
}

func (m *shellModel) resize() {
	m.input.SetWidth(max(m.width-2, 20))
	m.report.Width = m.width
	m.report.Height = max(m.height-inputHeight-shellChromeRows, minReportHeight)
	m.help.Width = m.width
}

func (m *shellModel) refreshReport() {
	m.reportContent = formatter.FormatAnalysis(m.session, formatter.ReportOptions{
		Width:      max(m.width-4, 20),
		ShowDetail: m.session.DetailVisible,
	})
	m.report.SetContent(m.reportContent)
}

func (m shellModel) shortHelp() []key.Binding {
	if m.focus == focusReport {
		return []key.Binding{m.keys.Detail, m.keys.SwitchFocus, m.keys.Analyze, m.keys.Help, m.keys.Quit}
	}
	return []key.Binding{m.keys.Analyze, m.keys.Example, m.keys.APIKey, m.keys.SwitchFocus, m.keys.Quit}
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatShellWelcome())
	b.WriteString("\n")

	switch m.mode {
	case modeHelp:
		b.WriteString(formatter.RenderBox("도움말", formatter.FormatShellHelp()))
		b.WriteString("\n" + formatter.Dim("  esc 또는 ? 로 닫기") + "\n")
		return b.String()
	case modeAPIKey:
		if m.form != nil {
			b.WriteString(m.form.View())
		}
		b.WriteString("\n" + formatter.Dim("  enter 확인 · esc 취소") + "\n")
		return b.String()
	}

	b.WriteString(formatter.Bold("1. 검사 결과 입력") + "\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " " + formatter.Dim(formatter.AnalyzingMessage) + "\n")
	case m.err != nil:
		b.WriteString(formatter.Error(m.err))
		if m.status != "" {
			b.WriteString("  " + formatter.Dim(m.status))
		}
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(formatter.Dim(m.status) + "\n")
	default:
		b.WriteString("\n")
	}

	if m.session.HasReport() {
		b.WriteString("\n" + formatter.Bold("2. AI 분석 결과") + "\n")
		b.WriteString(m.report.View())
		b.WriteString("\n")
	}

	b.WriteString(m.help.ShortHelpView(m.shortHelp()))
	return b.String()
}
