package combine

// AcceptedFile is a file that passed every filter and was decoded to text.
type AcceptedFile struct {
	Path    string // Slash-separated path relative to the scan root.
	Content string // Decoded file text.
}

// ReportMode selects what is printed after the document is copied.
type ReportMode int

const (
	ReportList     ReportMode = iota // Accepted paths, one per line.
	ReportDocument                   // The whole document.
	ReportTree                       // A directory tree of accepted paths.
)

// ParseReportMode maps a configuration value to a ReportMode.
// The empty string selects ReportList.
func ParseReportMode(s string) (ReportMode, bool) {
	switch s {
	case "", "list":
		return ReportList, true
	case "document":
		return ReportDocument, true
	case "tree":
		return ReportTree, true
	default:
		return ReportList, false
	}
}

func (m ReportMode) String() string {
	switch m {
	case ReportDocument:
		return "document"
	case ReportTree:
		return "tree"
	default:
		return "list"
	}
}
