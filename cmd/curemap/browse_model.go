package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"cure-colormap/pkg/swatch"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browseState int

const (
	stateList browseState = iota
	stateResult
)

const previewColumns = 48

var (
	styleBase = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	stylePreview = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1).
			MarginLeft(1)

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)

	styleErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

type browseModel struct {
	table     table.Model
	cat       *catalog
	titles    []string
	outDir    string
	state     browseState
	resultMsg string
	resultErr error

	// preview renders into buf; both are shared between model copies.
	preview *swatch.Helper
	buf     *bytes.Buffer
}

func newBrowseModel(cat *catalog, outDir string) browseModel {
	columns := []table.Column{
		{Title: "TITLE", Width: 36},
		{Title: "CHARACTERS", Width: 10},
	}

	titles := cat.titles.Names()
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(titleRows(cat)),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	buf := &bytes.Buffer{}
	surface := swatch.NewStyledTerminalSurface(buf, lipgloss.DefaultRenderer(), previewColumns)
	return browseModel{
		table:   t,
		cat:     cat,
		titles:  titles,
		outDir:  outDir,
		state:   stateList,
		preview: swatch.NewHelper(cat.registry, cat.titles, surface, swatch.WithSamples(previewColumns), swatch.WithLogger(logger)),
		buf:     buf,
	}
}

func titleRows(cat *catalog) []table.Row {
	all := cat.titles.All()
	rows := make([]table.Row, len(all))
	for i, t := range all {
		rows[i] = table.Row{t.Name, fmt.Sprintf("%d", len(t.Characters))}
	}
	return rows
}

// selected returns the title under the cursor.
func (m browseModel) selected() (string, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.titles) {
		return "", false
	}
	return m.titles[idx], true
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if title, ok := m.selected(); ok {
				m.resultErr = m.save(title)
				if m.resultErr == nil {
					m.resultMsg = "Saved " + filepath.Join(m.outDir, swatch.FileName(title))
				} else {
					m.resultMsg = fmt.Sprintf("Saving %s failed: %v", title, m.resultErr)
				}
				m.state = stateResult
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

// save writes the PNG figure of one title.
func (m browseModel) save(title string) error {
	h := swatch.NewHelper(m.cat.registry, m.cat.titles, swatch.NewPNGDirSurface(m.outDir), swatch.WithLogger(logger))
	return h.RenderTitles([]string{title})
}

// renderPreview draws the swatches of title into a string.
func (m browseModel) renderPreview(title string) string {
	m.buf.Reset()
	if err := m.preview.RenderTitles([]string{title}); err != nil {
		return styleErr.Render(err.Error())
	}
	if m.buf.Len() == 0 {
		return styleHelp.Render("No character of this title has a gradient.")
	}
	return m.buf.String()
}

func (m browseModel) View() string {
	title := styleTitle.Render("CUREMAP  " + fmt.Sprintf("[%d titles]", len(m.titles)))
	tableView := styleBase.Render(m.table.View())

	body := tableView
	if t, ok := m.selected(); ok {
		body = lipgloss.JoinHorizontal(lipgloss.Top, tableView, stylePreview.Render(m.renderPreview(t)))
	}

	switch m.state {
	case stateResult:
		var msg string
		if m.resultErr != nil {
			msg = styleErr.Render(m.resultMsg)
		} else {
			msg = styleOK.Render(m.resultMsg)
		}
		help := styleHelp.Render("enter / esc  continue    q  quit")
		return title + "\n" + body + "\n" + msg + "\n" + help

	default:
		var help string
		if len(m.titles) == 0 {
			help = styleHelp.Render("No titles.  q  quit")
		} else {
			help = styleHelp.Render("↑/↓  navigate    s  save PNG    q  quit")
		}
		return title + "\n" + body + "\n" + help
	}
}
