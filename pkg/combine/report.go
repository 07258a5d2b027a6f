package combine

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ConfirmationLine is printed once the document is on the clipboard.
const ConfirmationLine = "File structure and contents copied to clipboard:"

// WriteReport prints the confirmation line followed by the section chosen by mode.
func WriteReport(w io.Writer, doc *Document, mode ReportMode) error {
	green := color.New(color.FgGreen, color.Bold)
	if _, err := green.Fprintln(w, ConfirmationLine); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	var err error
	switch mode {
	case ReportDocument:
		_, err = io.WriteString(w, doc.String())
	case ReportTree:
		_, err = io.WriteString(w, RenderTree(doc.Paths()))
	default:
		for _, p := range doc.Paths() {
			if _, err = fmt.Fprintf(w, "- %s\n", p); err != nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
