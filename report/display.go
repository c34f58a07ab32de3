package report

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Colors used by every message.  Banners use the matching background style.
var (
	successColor = pterm.FgLightGreen
	warnColor    = pterm.FgYellow
	errorColor   = pterm.FgRed
	infoColor    = pterm.FgLightGreen

	warnBanner  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorBanner = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoBanner  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Print("\n")
	errorBanner.Print("Internal Compiler Error")
	errorColor.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Print("\n")
	errorBanner.Print("Fatal Error")
	errorColor.Println(" " + message)
	fmt.Println()
}

// displayStdError displays a standard Go error.
func displayStdError(tag string, err error) {
	errorBanner.Print(tag)
	errorColor.Println(" " + err.Error())
}

// displayInfo displays an informational message.
func displayInfo(tag, message string) {
	infoBanner.Print(tag)
	infoColor.Println(" " + message)
}

// displayPhase displays the header of a compilation phase.
func displayPhase(title string) {
	pterm.DefaultSection.Println(title)
}

// -----------------------------------------------------------------------------

// displayCompileMessage displays a compilation error or warning.  The label is
// the banner text: eg. "Syntax Error".
func displayCompileMessage(ctx *Context, label string, line int, message string, isError bool) {
	displayBanner(ctx, label, isError)
	fmt.Println(message)

	if ctx != nil && 0 < line && line <= len(ctx.Lines) {
		displaySourceLine(ctx.Lines[line-1], line, isError)
	}
}

// displayBanner displays the banner on top of all compilation messages.
func displayBanner(ctx *Context, label string, isError bool) {
	fmt.Print("\n-- ")
	if isError {
		errorBanner.Print(label)
	} else {
		warnBanner.Print(label)
	}
	fmt.Print(" ")

	fileName := "<input>"
	if ctx != nil && ctx.FilePath != "" {
		fileName = filepath.Base(ctx.FilePath)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - len(label) - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	infoColor.Println(fileName)
}

// displaySourceLine displays the erroneous line with its line number and
// underlines it.
func displaySourceLine(text string, line int, isError bool) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\t", "    "))

	lineNumWidth := len(strconv.Itoa(line)) + 1
	lineNumFmtStr := "%-" + strconv.Itoa(lineNumWidth) + "v"

	fmt.Println()
	infoColor.Print(fmt.Sprintf(lineNumFmtStr, line))
	fmt.Print("|  ")
	fmt.Println(text)

	fmt.Print(strings.Repeat(" ", lineNumWidth), "|  ")
	if isError {
		errorColor.Println(strings.Repeat("^", len(text)))
	} else {
		warnColor.Println(strings.Repeat("~", len(text)))
	}

	fmt.Println()
}

// displayCompilationFinished displays the summary line closing a run.
func displayCompilationFinished(errorCount, warningCount int) {
	fmt.Println()

	if errorCount == 0 {
		successColor.Print("Compilation succeeded ")
	} else {
		errorColor.Print("Compilation failed ")
	}

	fmt.Printf("(%s, %s)\n", countLabel(errorCount, "error", errorColor), countLabel(warningCount, "warning", warnColor))
}

// countLabel renders a count with its noun, eg. "2 warnings".  A zero count
// is shown in the success color.
func countLabel(n int, noun string, color pterm.Color) string {
	if n == 0 {
		color = successColor
	}

	if n != 1 {
		noun += "s"
	}

	return color.Sprint(n) + " " + noun
}
