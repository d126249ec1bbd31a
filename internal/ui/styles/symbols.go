package styles

// Symbols holds the icon set used by the wizard and command output
type Symbols struct {
	Question  string // prefix of an active prompt
	Check     string // finished prompt / success
	Cross     string // failure or cancellation
	Cursor    string // list cursor
	Checked   string // checklist item done
	Unchecked string // checklist item open
}

// Default symbols (plain unicode)
var defaultSymbols = Symbols{
	Question:  "?",
	Check:     "✓",
	Cross:     "✗",
	Cursor:    "❯",
	Checked:   "[x]",
	Unchecked: "[ ]",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Question:  "", // nf-fa-question
	Check:     "", // nf-fa-check
	Cross:     "", // nf-fa-times
	Cursor:    "", // nf-fa-chevron_right
	Checked:   "", // nf-fa-check_square
	Unchecked: "", // nf-fa-square_o
}

var useNerdfont bool

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

func QuestionSymbol() string { return currentSymbols.Question }
func CheckSymbol() string    { return currentSymbols.Check }
func CrossSymbol() string    { return currentSymbols.Cross }
func CursorSymbol() string   { return currentSymbols.Cursor }

// CheckboxSymbol returns the checklist marker for the given state.
func CheckboxSymbol(checked bool) string {
	if checked {
		return currentSymbols.Checked
	}
	return currentSymbols.Unchecked
}
