package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/palette"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
	swatchCell  = "  "
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints an indented dim line.
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a written file path, marked cached or fresh.
func printFile(path string, cached bool) {
	status, style := iconFresh, styleComputed
	if cached {
		status, style = iconCached, styleCached
	}
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path) + " " + style.Render(status))
}

// =============================================================================
// Swatches
// =============================================================================

// swatches renders each hex colour as a small coloured block.
func swatches(hexes []string) string {
	var b strings.Builder
	for _, h := range hexes {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(h)).Render(swatchCell))
	}
	return b.String()
}

// roleSwatches returns the role colours of set in role order.
func roleSwatches(set *features.Set) string {
	hexes := make([]string, 0, len(palette.AllRoles))
	for _, role := range palette.AllRoles {
		hexes = append(hexes, set.Roles.Color(role).Hex())
	}
	return swatches(hexes)
}

// =============================================================================
// Feature Table
// =============================================================================

// featureRows lists the derived values of set as key/value rows.
func featureRows(set *features.Set) [][]string {
	s := set.Summary()
	rows := [][]string{
		{"combination", fmt.Sprintf("%d / %d", s.Combination, features.Total())},
		{"seed", s.Seed},
		{"fingerprint", s.Fingerprint},
		{"palette", s.Palette + "  " + swatches(s.Colors)},
		{"order", s.Order},
	}
	for _, role := range palette.AllRoles {
		hex := s.Roles[role.String()]
		rows = append(rows, []string{role.String(), swatches([]string{hex}) + " " + hex})
	}
	rows = append(rows,
		[]string{"flow", s.Flow},
		[]string{"shape", s.Shape},
		[]string{"block", fmt.Sprintf("%d px", s.Block)},
		[]string{"max live", fmt.Sprint(s.MaxLive)},
		[]string{"distances", strings.Trim(fmt.Sprint(s.Distances), "[]")},
		[]string{"tempo", fmt.Sprintf("every %d ticks", s.Tempo)},
		[]string{"tone", fmt.Sprintf("%.3f", s.Tone)},
		[]string{"file", s.Filename},
	)
	return rows
}

// writeFeatureTable renders set as a bordered two-column table.
func writeFeatureTable(w io.Writer, set *features.Set) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("feature", "value").
		Rows(featureRows(set)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return StyleDim.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		})

	fmt.Fprintln(w, StyleTitle.Render(set.Label))
	fmt.Fprintln(w, t.Render())
}
