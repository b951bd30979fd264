package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantrail/fundlens/internal/search"
)

// exampleQueries seed the empty prompt so users discover what the engine
// understands.
var exampleQueries = []string{
	"best performing funds",
	"tax saving funds",
	"funds with aum greater than 1000 cr",
	"which funds are holding HDFC Bank",
	"technology sector funds",
	"safe funds for stable returns",
	"compare icici vs sbi funds",
}

// ExploreConfig configures the interactive prompt.
type ExploreConfig struct {
	Engine *search.Engine

	// Limit caps displayed results. 0 shows everything.
	Limit int

	// Delay artificially postpones each answer to mimic a remote backend.
	Delay time.Duration

	NoColor bool
}

type resultsMsg struct {
	query   string
	results []*search.SearchResult
	elapsed time.Duration
}

type queryErrMsg struct{ err error }

type exploreModel struct {
	cfg    ExploreConfig
	styles Styles

	input     textinput.Model
	spin      spinner.Model
	searching bool

	query   string
	results []*search.SearchResult
	elapsed time.Duration
	hint    string
	err     error
}

func newExploreModel(cfg ExploreConfig) exploreModel {
	styles := GetStyles(cfg.NoColor || DetectNoColor())

	input := textinput.New()
	input.Placeholder = "Ask about funds and stocks..."
	input.Prompt = "> "
	input.CharLimit = 200
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Success

	return exploreModel{
		cfg:    cfg,
		styles: styles,
		input:  input,
		spin:   spin,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.searching {
				return m, nil
			}
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				m.hint = "Type a query first"
				return m, nil
			}
			m.hint = ""
			m.err = nil
			m.searching = true
			return m, tea.Batch(m.spin.Tick, m.runQuery(query))
		}

	case resultsMsg:
		m.searching = false
		m.query = msg.query
		m.results = msg.results
		m.elapsed = msg.elapsed
		return m, nil

	case queryErrMsg:
		m.searching = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runQuery executes one query off the update loop. The artificial delay runs
// here so the spinner stays animated while waiting.
func (m exploreModel) runQuery(query string) tea.Cmd {
	engine, delay := m.cfg.Engine, m.cfg.Delay
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		start := time.Now()
		results, err := engine.ProcessQuery(context.Background(), query)
		if err != nil {
			return queryErrMsg{err: err}
		}
		return resultsMsg{query: query, results: results, elapsed: time.Since(start) + delay}
	}
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("FundLens"))
	b.WriteString(m.styles.Dim.Render("  natural-language fund & stock search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString("\n" + m.spin.View() + m.styles.Dim.Render("searching..."))

	case m.err != nil:
		b.WriteString("\n" + m.styles.Error.Render(m.err.Error()))

	case m.hint != "":
		b.WriteString("\n" + m.styles.Warning.Render(m.hint))

	case m.results != nil:
		b.WriteString(m.viewResults())

	default:
		b.WriteString("\n" + m.styles.Label.Render("Try one of these:"))
		for _, q := range exampleQueries {
			b.WriteString("\n" + m.styles.Dim.Render("  · "+q))
		}
	}

	b.WriteString("\n\n" + m.styles.Dim.Render("enter to search · esc to quit"))
	return b.String()
}

func (m exploreModel) viewResults() string {
	var b strings.Builder

	shown := m.results
	if m.cfg.Limit > 0 && len(shown) > m.cfg.Limit {
		shown = shown[:m.cfg.Limit]
	}

	for i, res := range shown {
		b.WriteString("\n")
		if res.IsNoResult() {
			b.WriteString(m.styles.Dim.Render(res.Explanation))
			continue
		}
		title := fmt.Sprintf("%d. %s", i+1, res.Name)
		b.WriteString(m.styles.Success.Render(title))
		b.WriteString(m.styles.Stage.Render("  " + string(res.Type)))
		b.WriteString(m.styles.Speed.Render("  " + strconv.FormatFloat(res.MatchScore, 'f', 2, 64)))
		b.WriteString("\n   " + res.Explanation)
	}

	if len(shown) < len(m.results) {
		b.WriteString("\n" + m.styles.Dim.Render(
			fmt.Sprintf("  ... %d more", len(m.results)-len(shown))))
	}
	b.WriteString("\n" + m.styles.Dim.Render(
		fmt.Sprintf("  %d result(s) in %dms", len(m.results), m.elapsed.Milliseconds())))
	return b.String()
}

// RunExplore starts the interactive prompt and blocks until the user quits.
func RunExplore(cfg ExploreConfig) error {
	_, err := tea.NewProgram(newExploreModel(cfg)).Run()
	return err
}
