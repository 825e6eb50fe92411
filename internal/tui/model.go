package tui

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pdfmanager/internal/domain"
)

// Port is the TUI-facing subset of the PDF service.
type Port interface {
	UploadAndSummarize(ctx context.Context, dir string) (*domain.UploadReport, error)
	Explain(ctx context.Context, term string) (*domain.Explanation, error)
}

type mode int

const (
	modeExplain mode = iota
	modeUpload
)

func (m mode) prompt() string {
	if m == modeUpload {
		return "Folder of PDFs and press Enter"
	}
	return "Keyword or concept and press Enter"
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	ctx      context.Context
	service  Port
	input    textinput.Model
	viewport viewport.Model
	mode     mode
	content  string
	status   string
	ready    bool
}

// New creates a new TUI model. content is shown in the result pane until
// the first action, typically the startup upload report.
func New(ctx context.Context, service Port, content string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = modeExplain.prompt()
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if content == "" {
		content = "No documents loaded yet. Press Tab to upload a folder."
	}
	return Model{
		ctx:      ctx,
		service:  service,
		input:    ti,
		viewport: vp,
		content:  content,
		status:   "Tab switches between upload and explain.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header and mode, status, input box
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.content)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			if m.mode == modeExplain {
				m.mode = modeUpload
			} else {
				m.mode = modeExplain
			}
			m.input.Placeholder = m.mode.prompt()
			m.input.SetValue("")
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			if m.mode == modeUpload {
				m.upload(value)
			} else {
				m.explain(value)
			}
			m.input.SetValue("")
			m.viewport.SetContent(m.content)
			m.viewport.GotoTop()
			return m, nil
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) upload(dir string) {
	report, err := m.service.UploadAndSummarize(m.ctx, dir)
	if err != nil {
		if report != nil && len(report.Summaries) > 0 {
			m.content = RenderReport(report)
		}
		m.status = "Error: " + err.Error()
		return
	}
	m.content = RenderReport(report)
	m.status = fmt.Sprintf("Loaded %d document(s) from %s", len(report.Summaries), dir)
	if n := len(report.Skipped); n > 0 {
		m.status += fmt.Sprintf(", skipped %d", n)
	}
}

func (m *Model) explain(term string) {
	exp, err := m.service.Explain(m.ctx, term)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.content = RenderExplanation(exp)
	m.status = fmt.Sprintf("Explanation for %q", term)
	if n := len(exp.Errors); n > 0 {
		m.status += fmt.Sprintf(" (%d service(s) unavailable)", n)
	}
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("PDF Manager")
	modeLine := modeStyle.Render("Mode: " + m.modeName())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + modeLine + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) modeName() string {
	if m.mode == modeUpload {
		return "upload and summarize"
	}
	return "explain a keyword or concept"
}

// RenderReport formats one summary block per file.
func RenderReport(report *domain.UploadReport) string {
	if report == nil || (len(report.Summaries) == 0 && len(report.Skipped) == 0) {
		return "No PDF files found."
	}
	var b strings.Builder
	for _, s := range report.Summaries {
		b.WriteString(titleStyle.Render("Summary for " + s.FileName + ":"))
		b.WriteString("\n" + s.Summary + "\n\n")
	}
	for _, s := range report.Skipped {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Skipped %s: %v", s.FileName, s.Err)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderExplanation formats the matches or definition followed by the
// chatbot, paraphrase and translation sections.
func RenderExplanation(exp *domain.Explanation) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Explanation") + "\n")
	switch {
	case len(exp.Matches) > 0:
		b.WriteString(exp.Term + " found in the following documents:\n\n")
		for _, r := range exp.Matches {
			b.WriteString(r.DocumentID + ": " + highlight(r.Text, exp.Term) + "\n")
		}
	case exp.Definitions != nil:
		b.WriteString(exp.Term + ": " + exp.Definitions[exp.Term] + "\n")
	default:
		b.WriteString(unavailable(exp.Errors[domain.AdapterDictionary]) + "\n")
	}
	section(&b, "Chatbot Response", exp.ChatResponse, exp.Errors[domain.AdapterChat])
	section(&b, "Rephrased Text", exp.Rephrase, exp.Errors[domain.AdapterRephraser])
	section(&b, "Translated Text", exp.Translation, exp.Errors[domain.AdapterTranslator])
	return strings.TrimRight(b.String(), "\n")
}

func section(b *strings.Builder, title, body string, err error) {
	b.WriteString("\n" + titleStyle.Render(title) + "\n")
	if err != nil {
		b.WriteString(unavailable(err) + "\n")
		return
	}
	if body == "" {
		body = "(none)"
	}
	b.WriteString(body + "\n")
}

func unavailable(err error) string {
	if err == nil {
		return "No result."
	}
	return errorStyle.Render("Unavailable: " + err.Error())
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	modeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// highlight marks every case-insensitive occurrence of term in text.
func highlight(text, term string) string {
	if term == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	return re.ReplaceAllStringFunc(text, func(s string) string { return highlightStyle.Render(s) })
}
