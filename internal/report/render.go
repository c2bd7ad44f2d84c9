package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/adnxy/react-native-lupin/internal/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// PrintOptions controls console rendering.
type PrintOptions struct {
	NoColor  bool
	Show     types.Severity
	Duration time.Duration
}

var sevStyles = map[types.Severity]lipgloss.Style{
	types.SevCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
	types.SevHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	types.SevMed:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	types.SevLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	types.SevInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func styledSeverity(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	if st, ok := sevStyles[s]; ok {
		return st.Render(string(s))
	}
	return string(s)
}

// PrintMulti renders the displayed set of a multi-bundle report as a table
// with a severity summary footer. Findings below opts.Show are counted but
// not listed.
func PrintMulti(w io.Writer, rep MultiReport, opts PrintOptions) {
	shown := rep.Displayed(opts.Show)
	if len(rep.Findings) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
	} else if len(shown) == 0 {
		fmt.Fprintf(w, "No issues at or above %q (%d below threshold)\n", opts.Show, len(rep.Findings))
	} else {
		matchWidth := matchColumnWidth()
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"SEVERITY", "RULE", "BUNDLE", "POS", "MATCH"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		for _, f := range shown {
			table.Append([]string{
				styledSeverity(f.Severity, opts.NoColor),
				f.Detector,
				f.Bundle,
				strconv.Itoa(f.Position),
				maskValue(f.Match, matchWidth),
			})
		}
		table.Render()
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bundles scanned: %d   Findings: %d (displayed: %d)\n", rep.Bundles, rep.TotalFindings, len(shown))
	hist := rep.Summary.SeverityBreakdown
	if len(hist) > 0 {
		fmt.Fprint(w, "By severity:")
		levels := types.Levels()
		for i := len(levels) - 1; i >= 0; i-- {
			if n := hist[levels[i]]; n > 0 {
				fmt.Fprintf(w, " %s: %d", levels[i], n)
			}
		}
		fmt.Fprintln(w)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// maskValue keeps the ends of a matched value visible without leaking it in
// full to the console.
func maskValue(s string, max int) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	masked := s[:4] + "…" + s[len(s)-4:]
	if len(masked) > max {
		return masked[:max]
	}
	return masked
}

func matchColumnWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 48
	}
	w := width / 3
	if w < 16 {
		w = 16
	}
	return w
}
