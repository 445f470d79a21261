package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quran-wbw/internal/log"
	"quran-wbw/internal/quran"
	"quran-wbw/internal/theme"
	"quran-wbw/internal/verses"
)

var clipboardWrite = clipboard.WriteAll

// Fetcher runs one verse request.
type Fetcher interface {
	Fetch(ctx context.Context, req verses.Request) (*verses.Result, error)
}

type Config struct {
	Fetcher Fetcher
	Layout  verses.Layout
	Theme   string
	// SaveTheme persists the theme picked with ctrl+t; nil skips persisting.
	SaveTheme func(key string) error
}

const (
	inputStart = iota
	inputCount
)

type Model struct {
	fetcher   Fetcher
	layout    verses.Layout
	saveTheme func(string) error

	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	viewport viewport.Model
	theme    theme.Theme
	styles   styles

	last     *verses.Result
	content  string // plain text, as copied
	status   string
	failures []error
	err      error
	loading  bool
	width    int
	height   int
	ready    bool
}

type fetchedMsg struct {
	res *verses.Result
	err error
}

type keyMap struct {
	Quit        key.Binding
	Submit      key.Binding
	Next        key.Binding
	Prev        key.Binding
	Theme       key.Binding
	ToggleWords key.Binding
	Copy        key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fetch")),
	Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:        key.NewBinding(key.WithKeys("shift+tab")),
	Theme:       key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	ToggleWords: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "words")),
	Copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy again")),
}

func NewModel(cfg Config) Model {
	start := textinput.New()
	start.Placeholder = "2:29"
	start.CharLimit = 7
	start.Width = 10
	start.Focus()

	count := textinput.New()
	count.Placeholder = "5"
	count.CharLimit = 4
	count.Width = 10

	th := theme.GetTheme(cfg.Theme)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	st := newStyles(th)
	sp.Style = st.spinner

	return Model{
		fetcher:   cfg.Fetcher,
		layout:    cfg.Layout,
		saveTheme: cfg.SaveTheme,
		inputs:    []textinput.Model{start, count},
		focus:     inputStart,
		spinner:   sp,
		theme:     th,
		styles:    st,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) fetch(req verses.Request) tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		res, err := fetcher.Fetch(context.Background(), req)
		return fetchedMsg{res: res, err: err}
	}
}

// readRequest validates both inputs.
func (m Model) readRequest() (verses.Request, error) {
	start, err := quran.ParseRef(m.inputs[inputStart].Value())
	if err != nil {
		return verses.Request{}, err
	}

	raw := strings.TrimSpace(m.inputs[inputCount].Value())
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return verses.Request{}, errors.Errorf("verse count %q is not a positive number", raw)
	}

	return verses.Request{Start: start, Count: count}, nil
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	m.styles = newStyles(t)
	m.spinner.Style = m.styles.spinner
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.styles.render(m.content))
}

func (m *Model) copyContent() {
	if err := clipboardWrite(m.content); err != nil {
		log.Logger.Named("ui").Debug("copy to clipboard", zap.Error(err))
		m.status = ""
		m.err = errors.Wrap(err, "copy to clipboard")
		return
	}
	m.status = "Copied to clipboard!"
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, keys.Theme):
			m.setTheme(theme.Next(m.theme.Key))
			m.status = "Theme: " + m.theme.Name
			if m.saveTheme != nil {
				if err := m.saveTheme(m.theme.Key); err != nil {
					m.err = errors.Wrap(err, "save theme")
				}
			}
			return m, nil
		case key.Matches(msg, keys.ToggleWords):
			m.layout.ShowWords = !m.layout.ShowWords
			if m.last != nil {
				m.err = nil
				m.content = verses.Format(m.last.Verses, m.layout)
				m.refreshViewport()
				m.copyContent()
			}
			return m, nil
		case key.Matches(msg, keys.Copy):
			if m.content != "" {
				m.err = nil
				m.copyContent()
			}
			return m, nil
		case key.Matches(msg, keys.Submit):
			if m.loading {
				return m, nil
			}
			if m.focus == inputStart && m.inputs[inputCount].Value() == "" {
				return m, m.setFocus(inputCount)
			}
			req, err := m.readRequest()
			if err != nil {
				m.err = err
				m.status = ""
				return m, nil
			}
			m.err = nil
			m.status = ""
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetch(req))
		case msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown ||
			msg.Type == tea.KeyUp || msg.Type == tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		h := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refreshViewport()

	case fetchedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.last = msg.res
		m.failures = msg.res.Failures
		m.content = verses.Format(msg.res.Verses, m.layout)
		m.refreshViewport()
		m.viewport.GotoTop()
		m.copyContent()

		// ready for the next lookup
		m.inputs[inputStart].SetValue("")
		m.inputs[inputCount].SetValue("")
		cmds = append(cmds, m.setFocus(inputStart))

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) labelStyle(input int) lipgloss.Style {
	if input == m.focus {
		return m.styles.labelActive
	}
	return m.styles.label
}

// lines taken by everything except the viewport
const chromeHeight = 8

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var sb strings.Builder
	sb.WriteString(m.styles.title.Render(fmt.Sprintf("Quran word-by-word · %s", m.theme.Name)))
	sb.WriteString("\n")
	sb.WriteString(m.labelStyle(inputStart).Render("Starting verse") + m.inputs[inputStart].View() + "\n")
	sb.WriteString(m.labelStyle(inputCount).Render("Verse count") + m.inputs[inputCount].View() + "\n")
	sb.WriteString(m.styles.divider.Render(strings.Repeat("─", max(m.width, 1))) + "\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " Fetching...")
	case m.err != nil:
		sb.WriteString(m.styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
	case len(m.failures) > 0:
		sb.WriteString(m.styles.warning.Render(fmt.Sprintf("%s (%d request(s) failed, output is partial)",
			m.status, len(m.failures))))
	default:
		sb.WriteString(m.styles.success.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.help.Render("tab: next field | enter: fetch | ↑/↓ pgup/pgdn: scroll | " +
		"ctrl+w: words | ctrl+y: copy | ctrl+t: theme | esc: quit"))

	return sb.String()
}
