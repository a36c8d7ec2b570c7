package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/poetry-lock-package/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
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
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printNewline prints an empty line.
func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}

// =============================================================================
// Result Display
// =============================================================================

// printResult summarizes a pipeline run.
func printResult(w io.Writer, res *pipeline.Result, graph string) {
	name := res.Lock.Manifest.Name()
	if res.Cleaned {
		printSuccess(w, "Generated %s %s", StyleTitle.Render(name), StyleDim.Render("(project removed)"))
	} else {
		printSuccess(w, "Generated %s", StyleTitle.Render(name))
		printFile(w, res.Project.Manifest)
		for _, path := range res.Project.Created {
			printFile(w, path)
		}
	}
	printInfo(w, "%d pinned dependencies", res.Stats.Pinned)
	for _, path := range res.Artifacts {
		printFile(w, path)
	}
	if graph != "" {
		printFile(w, graph)
	}
}

// printPinned prints the pinned dependency table sorted by package name.
func printPinned(w io.Writer, deps map[string]any) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("PACKAGE", "VERSION", "PYTHON", "MARKERS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			return styleTableCell
		})

	for _, name := range slices.Sorted(maps.Keys(deps)) {
		t.Row(pinnedRow(name, deps[name])...)
	}
	fmt.Fprintln(w, t.Render())
}

func pinnedRow(name string, spec any) []string {
	switch v := spec.(type) {
	case string:
		return []string{name, v, "", ""}
	case map[string]any:
		return []string{name, str(v["version"]), str(v["python"]), str(v["markers"])}
	default:
		return []string{name, fmt.Sprint(v), "", ""}
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
