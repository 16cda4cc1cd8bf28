package extract

type titleKind uint8

const (
	titleMissing titleKind = iota
	titlePlain
	titleRuns
	titleSimpleText
)

// Title is the polymorphic title of a renderer node: a plain string, a list of
// styled text runs, or a {"simpleText": …} object.
type Title struct {
	kind titleKind
	text string
	runs []string
}

// Plain is a title given directly as a string.
func Plain(s string) Title {
	return Title{kind: titlePlain, text: s}
}

// Runs is a title made of styled segments, in order.
func Runs(segments ...string) Title {
	return Title{kind: titleRuns, runs: segments}
}

// SimpleText is a title given as {"simpleText": s}.
func SimpleText(s string) Title {
	return Title{kind: titleSimpleText, text: s}
}

// String resolves the title. Runs resolve to the first segment only.
func (t Title) String() string {
	switch t.kind {
	case titlePlain, titleSimpleText:
		return t.text
	case titleRuns:
		if len(t.runs) == 0 {
			return ""
		}
		return t.runs[0]
	default:
		return ""
	}
}
