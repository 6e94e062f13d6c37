package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen"
	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/suite"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorGray)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printFlavors prints one row per flavor with aligned columns
func printFlavors(w io.Writer, flavors []odfgen.Flavor) {
	idCol := lipgloss.NewStyle().Width(14)
	familyCol := lipgloss.NewStyle().Width(14)
	versionCol := lipgloss.NewStyle().Width(9)

	fmt.Fprintln(w, styleHeader.Render(
		idCol.Render("FLAVOR")+familyCol.Render("FAMILY")+versionCol.Render("VERSION")+"MIMETYPE"))
	for _, f := range flavors {
		fmt.Fprintln(w,
			idCol.Render(styleValue.Render(f.ID))+
				familyCol.Render(string(f.Family))+
				versionCol.Render(string(f.Version))+
				styleDim.Render(f.MimeType()))
	}
}

// printReport prints one line per input followed by a summary
func printReport(w io.Writer, report *suite.Report) {
	fmt.Fprintln(w, styleTitle.Render("Suite")+" "+styleDim.Render(report.RunID))

	for _, res := range report.Results {
		if res.OK() {
			line := fmt.Sprintf("%s %s", res.Name, styleDim.Render(res.Duration.Round(time.Millisecond).String()))
			if res.Warnings > 0 {
				line += " " + styleWarning.Render(fmt.Sprintf("(%d skipped fragments)", res.Warnings))
			}
			printSuccess(w, "%s", line)
			printFile(w, res.Path)
			continue
		}
		printError(w, "%s: %v", res.Name, res.Err)
	}

	summary := fmt.Sprintf("%s built, %s failed",
		styleNumber.Render(fmt.Sprint(report.Succeeded())),
		styleNumber.Render(fmt.Sprint(report.Failed())))
	if report.Skipped > 0 {
		summary += fmt.Sprintf(", %s skipped", styleNumber.Render(fmt.Sprint(report.Skipped)))
	}
	summary += " " + styleDim.Render(report.Duration.Round(time.Millisecond).String())
	fmt.Fprintln(w, summary)
}
