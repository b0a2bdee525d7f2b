package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/prng"
)

// pageStep is how far pgup/pgdown move through the combinations.
const pageStep = 100

var (
	browseDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	browseErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// BrowseModel - Interactive combination browser
// =============================================================================

// BrowseModel is the bubbletea model for stepping through combinations.
type BrowseModel struct {
	Seed        string
	Combination int
	Total       int
	Set         *features.Set
	Err         error

	// Selected is set when the user pressed enter on a combination.
	Selected *features.Set

	rand func(n int) int
}

// NewBrowseModel starts browsing at combination start.
func NewBrowseModel(seed string, start int) BrowseModel {
	m := BrowseModel{Seed: seed, Total: features.Total(), rand: rand.IntN}
	m.Combination = start
	return m.derive()
}

func (m BrowseModel) derive() BrowseModel {
	if m.Total > 0 {
		m.Combination = ((m.Combination % m.Total) + m.Total) % m.Total
	}
	m.Set, m.Err = features.Derive(m.Combination, prng.New(m.Seed))
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "down", "j":
		m.Combination++
	case "left", "h", "up", "k":
		m.Combination--
	case "pgdown", "J":
		m.Combination += pageStep
	case "pgup", "K":
		m.Combination -= pageStep
	case "r":
		m.Combination = m.rand(m.Total)
	case "enter":
		if m.Set != nil {
			m.Selected = m.Set
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
	return m.derive(), nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Combinations"))
	b.WriteString("  ")
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("seed %s  [%d/%d]", m.Seed, m.Combination, m.Total)))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("←/→ step  pgup/pgdn ±100  r random  ⏎ capture  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(browseErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleValue.Bold(true).Render(m.Set.Label))
	b.WriteString("\n")
	b.WriteString(roleSwatches(m.Set))
	b.WriteString("  ")
	b.WriteString(browseDimStyle.Render("background · bottom · top · even · odd"))
	b.WriteString("\n\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(featureRows(m.Set)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return StyleDim.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	return b.String()
}
