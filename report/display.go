package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/semiviral/algosh/token"
	"github.com/semiviral/algosh/util"
)

var (
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	NoteColorFG  = pterm.FgCyan
	HelpColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	pterm.FgLightGreen.Println(" " + msg)
}

// RenderError renders a diagnostic against the source buffer it was produced
// from.  reprPath is the representative path of the script, used only for
// display.
func RenderError(reprPath, src string, err *Error) {
	startLn, startCol, endLn, endCol := lineColumns(src, err.Span())

	fmt.Print("\n-- ")
	ErrorStyleBG.Print("Syntax Error")
	fmt.Printf(" %s:%d:%d\n", reprPath, startLn+1, startCol+1)
	fmt.Println(err.Error())

	if _, ok := err.Kind().(NoTopLevelExpr); !ok {
		displaySourceText(src, startLn, startCol, endLn, endCol)
	}

	switch kind := err.Kind().(type) {
	case Unexpected:
		switch len(kind.Expected) {
		case 0:
		case 1:
			printNote(fmt.Sprintf("expected '%s'", kind.Expected[0]))
		default:
			printNote("expected one of " + strings.Join(
				util.Map(kind.Expected, func(k token.Kind) string { return "'" + k.String() + "'" }),
				", ",
			))
		}
	case UnclosedDelimiter:
		printHelp(fmt.Sprintf(
			"try inserting '%s' at the end of the %s",
			kind.Expected,
			delimiterContext(kind.Delimiter),
		))
	}

	fmt.Println()
}

func printNote(msg string) {
	NoteColorFG.Println("note: " + msg)
}

func printHelp(msg string) {
	HelpColorFG.Println("help: " + msg)
}

// delimiterContext names the construct an opening delimiter begins, for the
// unclosed-delimiter help text.
func delimiterContext(delim token.Kind) string {
	switch delim {
	case token.LBRACKET:
		return "array declaration"
	case token.LPAREN:
		return "grouping"
	default:
		return "parameter list"
	}
}

// -----------------------------------------------------------------------------

// lineColumns converts a byte span into zero-indexed start and end line and
// column numbers.  The end position is that of the byte one past the span, so
// a caret over `[start, end)` covers columns `startCol..endCol`.
func lineColumns(src string, span token.Span) (startLn, startCol, endLn, endCol int) {
	ln, col := 0, 0
	for i := 0; i < len(src) && i < span.End; i++ {
		if i == span.Start {
			startLn, startCol = ln, col
		}

		if src[i] == '\n' {
			ln++
			col = 0
		} else {
			col++
		}
	}

	if span.Start >= len(src) {
		startLn, startCol = ln, col
	}

	return startLn, startCol, ln, col
}

// displaySourceText displays the segment of source text covered by the given
// zero-indexed positions, with the covered region underlined by carets.
func displaySourceText(src string, startLn, startCol, endLn, endCol int) {
	// Collect the source lines containing the given source text.
	var lines []string
	for ln, line := range strings.Split(src, "\n") {
		if startLn <= ln && ln <= endLn {
			lines = append(lines, strings.ReplaceAll(line, "\t", "    "))
		}
	}

	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Generate the format string for line numbers.
	maxLineNumLen := len(strconv.Itoa(endLn + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmtStr, i+startLn+1)
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// For any line which is not the starting line the underlining always
		// continues from the previous line, so the prefix is zero.
		carretPrefixCount := 0
		if i == 0 {
			carretPrefixCount = startCol - minIndent
		}

		// For all lines except the last line the underlining spans to the end
		// of the line, so the suffix is zero.
		carretSuffixCount := 0
		if i == len(lines)-1 {
			carretSuffixCount = len(line) - minIndent - (endCol - minIndent)
		}

		carretCount := len(line) - minIndent - carretPrefixCount - carretSuffixCount
		if carretCount < 1 {
			// Zero-width spans (eg. end of input) still get a caret.
			carretCount = 1
		}

		if carretPrefixCount < 0 {
			carretPrefixCount = 0
		}

		fmt.Print(strings.Repeat(" ", carretPrefixCount))
		ErrorColorFG.Println(strings.Repeat("^", carretCount))
	}
}
