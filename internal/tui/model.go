package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sevColors     = map[types.Severity]lipgloss.Style{
		types.SevCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
		types.SevHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		types.SevMed:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		types.SevLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		types.SevInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

// Model is the findings browser: a filterable list with a detail pane.
type Model struct {
	findings []types.Finding
	filtered []int // indexes into findings
	cursor   int
	minSev   types.Severity
	detail   bool
	view     viewport.Model
	width    int
	height   int
	status   string
}

func NewModel(findings []types.Finding) Model {
	m := Model{
		findings: findings,
		minSev:   types.SevInfo,
		view:     viewport.New(80, 12),
	}
	m.applyFilter()
	return m
}

func (m *Model) applyFilter() {
	m.filtered = m.filtered[:0]
	for i, f := range m.findings {
		if f.Severity.AtLeast(m.minSev) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() (types.Finding, bool) {
	if len(m.filtered) == 0 {
		return types.Finding{}, false
	}
	return m.findings[m.filtered[m.cursor]], true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width - 2
		m.view.Height = msg.Height / 3
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "enter":
			if f, ok := m.current(); ok {
				m.detail = !m.detail
				if m.detail {
					m.view.SetContent(renderDetail(f))
					m.view.GotoTop()
				}
			}
		case "s":
			m.minSev = nextLevel(m.minSev)
			m.applyFilter()
			m.status = fmt.Sprintf("showing %s and above", m.minSev)
		case "c":
			if f, ok := m.current(); ok && f.Match != "" {
				if err := clipboard.WriteAll(f.Match); err != nil {
					m.status = "copy failed: " + err.Error()
				} else {
					m.status = "match copied to clipboard"
				}
			}
		}
	}
	if m.detail {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("lupin — %d findings (filter: %s+)", len(m.filtered), m.minSev)))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString("  nothing at this severity\n")
	}
	for i, idx := range m.filtered {
		f := m.findings[idx]
		line := fmt.Sprintf("  %-8s %-28s %s @%d", sevLabel(f.Severity), f.Detector, f.Bundle, f.Position)
		if i == m.cursor {
			line = selectedStyle.Render("▸" + line[1:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.detail {
		b.WriteString("\n")
		b.WriteString(m.view.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "j/k move · enter detail · s filter · c copy · q quit"
	if m.status != "" {
		help = m.status + "  ·  " + help
	}
	b.WriteString(statusStyle.Render(help))
	return b.String()
}

func sevLabel(s types.Severity) string {
	if st, ok := sevColors[s]; ok {
		return st.Render(string(s))
	}
	return string(s)
}

func nextLevel(s types.Severity) types.Severity {
	levels := types.Levels()
	for i, lv := range levels {
		if lv == s {
			return levels[(i+1)%len(levels)]
		}
	}
	return types.SevInfo
}

func renderDetail(f types.Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", f.Title, f.Severity)
	fmt.Fprintf(&b, "%s\n\n", f.Message)
	if f.Bundle != "" {
		fmt.Fprintf(&b, "bundle:   %s\n", f.Bundle)
	}
	fmt.Fprintf(&b, "position: %d\n", f.Position)
	for k, v := range f.Metadata {
		fmt.Fprintf(&b, "%s: %s\n", k, v)
	}
	b.WriteString("\n")
	b.WriteString(highlightJS(f.Snippet))
	return b.String()
}

// highlightJS renders a snippet with JavaScript syntax colors; on any failure
// the raw snippet is returned.
func highlightJS(src string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, src, "javascript", "terminal256", "monokai"); err != nil {
		return src
	}
	return buf.String()
}
