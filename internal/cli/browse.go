package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
	"github.com/pedigraph/pedigraph/pkg/pedigree"
	"github.com/pedigraph/pedigraph/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command for interactive tree exploration.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		graphFile string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "browse [file.ged]",
		Short: "Explore a family tree generation by generation",
		Long: `Explore a family tree interactively in the terminal.

Individuals are grouped into generation rows in layout order: use the
arrow keys (or hjkl) to move between generations and along a row. The
detail panel shows the selected person's recorded events and attributes.

The input is either a GEDCOM file, parsed on the fly, or an already
parsed graph passed with --graph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && graphFile == "" {
				return fmt.Errorf("provide a GEDCOM file or --graph")
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runBrowse(cmd.Context(), input, graphFile, noCache)
		},
	}

	cmd.Flags().StringVar(&graphFile, "graph", "", "browse a parsed graph JSON file instead of a GEDCOM file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runBrowse loads or parses the tree and starts the TUI.
func (c *CLI) runBrowse(ctx context.Context, input, graphFile string, noCache bool) error {
	g, err := c.loadBrowseGraph(ctx, input, graphFile, noCache)
	if err != nil {
		return err
	}
	if g.NodeCount() == 0 {
		printInfo("No individuals found")
		return nil
	}

	model := newBrowseModel(g)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func (c *CLI) loadBrowseGraph(ctx context.Context, input, graphFile string, noCache bool) (*pedigree.Graph, error) {
	if graphFile != "" {
		g, err := pedigree.ReadGraphFile(graphFile)
		if err != nil {
			return nil, fmt.Errorf("load graph %s: %w", graphFile, err)
		}
		return g, nil
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Source: string(source),
		Logger: c.Logger,
	})
	if err != nil {
		return nil, err
	}
	return result.Graph, nil
}

// =============================================================================
// browseModel - Generation-by-generation tree browser
// =============================================================================

// browseModel is the bubbletea model for the tree browser. Rows mirror
// the layout: one slice per generation, ordered by x coordinate.
type browseModel struct {
	rows   [][]*pedigree.Node
	row    int
	col    int
	height int
}

func newBrowseModel(g *pedigree.Graph) browseModel {
	gens := g.Generations()
	rows := make([][]*pedigree.Node, 0, len(gens))
	byGen := g.Rows()
	for _, gen := range gens {
		row := make([]*pedigree.Node, 0, len(byGen[gen]))
		for _, id := range byGen[gen] {
			if n, ok := g.Node(id); ok {
				row = append(row, n)
			}
		}
		sort.Slice(row, func(i, j int) bool {
			if row[i].X != row[j].X {
				return row[i].X < row[j].X
			}
			return row[i].ID < row[j].ID
		})
		rows = append(rows, row)
	}
	return browseModel{rows: rows, height: 12}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.row > 0 {
				m.row--
				m.clampCol()
			}
		case "down", "j":
			if m.row < len(m.rows)-1 {
				m.row++
				m.clampCol()
			}
		case "left", "h":
			if m.col > 0 {
				m.col--
			}
		case "right", "l":
			if m.col < len(m.rows[m.row])-1 {
				m.col++
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) clampCol() {
	if max := len(m.rows[m.row]) - 1; m.col > max {
		m.col = max
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Family Tree"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ generation  ←/→ person  q quit"))
	b.WriteString("\n\n")

	row := m.rows[m.row]

	// Window the row around the cursor
	start := 0
	if m.col >= m.height {
		start = m.col - m.height + 1
	}
	end := start + m.height
	if end > len(row) {
		end = len(row)
	}

	rows := [][]string{}
	for i := start; i < end; i++ {
		n := row[i]

		cursor := "  "
		if i == m.col {
			cursor = "▸ "
		}

		name := n.Name
		if name == "" {
			name = n.ID
		}
		if i == m.col {
			name = listSelectedStyle.Render(name)
		}

		lifespan := n.Lifespan
		if lifespan == "" {
			lifespan = "—"
		}

		occupation := n.Occupation
		if occupation == "" {
			occupation = "—"
		}

		rows = append(rows, []string{cursor, name, sexLabel(n.Sex), lifespan, occupation})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", fmt.Sprintf("Generation %d (%d people)", m.row, len(row)), "Sex", "Lifespan", "Occupation").
		Rows(rows...)

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.detailView(row[m.col]))

	return b.String()
}

// detailView renders the detail panel for the selected individual.
func (m browseModel) detailView(n *pedigree.Node) string {
	var b strings.Builder

	b.WriteString(StyleHighlight.Render(n.Name))
	b.WriteString("\n")

	writeDetail := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(StyleValue.Render(value))
		b.WriteString("\n")
	}

	writeDetail("Born", eventLabel(n.Birth))
	writeDetail("Died", eventLabel(n.Death))
	writeDetail("Nationality", n.Nationality)
	writeDetail("Occupation", n.Occupation)
	if len(n.Titles) > 0 {
		writeDetail("Titles", strings.Join(n.Titles, ", "))
	}
	if n.Individual != nil && len(n.Individual.Notes) > 0 {
		writeDetail("Notes", strings.Join(n.Individual.Notes, " · "))
	}

	return b.String()
}

func sexLabel(sex string) string {
	switch sex {
	case "M":
		return "male"
	case "F":
		return "female"
	case "":
		return "—"
	default:
		return sex
	}
}

func eventLabel(ev *gedcom.Event) string {
	if ev == nil {
		return ""
	}
	switch {
	case ev.Date != "" && ev.Place != "":
		return ev.Date + ", " + ev.Place
	case ev.Date != "":
		return ev.Date
	default:
		return ev.Place
	}
}
