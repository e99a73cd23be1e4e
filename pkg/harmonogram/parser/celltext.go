package parser

import (
	"regexp"
	"strings"
)

// CellDetails is the heuristic decomposition of one cell's text. Empty
// string fields mean the category could not be extracted; an empty Title
// marks the cell as non-content.
type CellDetails struct {
	Title     string
	Type      string
	Lecturers []string
	Location  string
	Raw       string
}

// typeKeyword pairs a search key with its canonical classification tag.
// Keys are matched as substrings of the uppercased text padded with one
// leading space, so keys starting with a space anchor on token boundaries.
// Order is significant: the first key found wins, and several keys exist
// only to catch mojibake-degraded spellings ('?' for a mangled letter).
type typeKeyword struct {
	key string
	tag string
}

var typeKeywords = []typeKeyword{
	{"LAB", "LAB"},
	{" PROJEKT", "PROJEKT"},
	{"PROJEKT", "PROJEKT"},
	{"wykład", "W"},
	{"konwersatorium", "K"},
	{"ćw", "ĆW"},
	{" ĆW", "ĆW"},
	{" ?W", "ĆW"},
	{" ?w", "ĆW"},
	{" W ", "W"},
	{" W\n", "W"},
	{"\nW ", "W"},
	{" K ", "K"},
	{" K\n", "K"},
}

// lecturerPattern matches an academic title abbreviation followed by one to
// three capitalized name tokens.
var lecturerPattern = regexp.MustCompile(`\b(?:dr hab\.|dr|mgr|prof\.?)(?: [A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż.]+){1,3}`)

// roomPatterns are tried in order; the first match becomes the location.
// Numeric building codes come before named hall/room keywords.
var roomPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+\.\d+\s*(?:CP|CI|CsH)\b`),
	regexp.MustCompile(`(?i)\b(?:CP|CI|CsH)\s*\d+\b`),
	regexp.MustCompile(`(?i)\baula[^;\n]*`),
	regexp.MustCompile(`(?i)\bsala[^;\n]*`),
}

// counterPattern matches "n/n" group counters, which are noise for the title.
var counterPattern = regexp.MustCompile(`\b\d+\s*/\s*\d+\b`)

type strip struct {
	re   *regexp.Regexp
	repl string
}

// typeTokenStrips removes classification tokens from the residual title,
// applied in order. The lone-W forms only fire at the text edges or between
// whitespace and a capital, so W-initial words survive.
var typeTokenStrips = []strip{
	{regexp.MustCompile(`(?i)\bLAB\b`), " "},
	{regexp.MustCompile(`(?i)\bPROJEKT\b`), " "},
	{regexp.MustCompile(`(?i)\bĆW\b`), " "},
	{regexp.MustCompile(`(?i)\b[ćĆ]w\b`), " "},
	{regexp.MustCompile(`\bK\b`), " "},
	{regexp.MustCompile(`(?i)\bwykład\b`), " "},
	{regexp.MustCompile(`(?i)\bkonwersatorium\b`), " "},
	{regexp.MustCompile(`(?i)^\s*W\s+`), " "},
	{regexp.MustCompile(`(?i)\s+W\s*$`), " "},
	{regexp.MustCompile(`\s+W\s+([A-ZĄĆĘŁŃÓŚŹŻ])`), " $1"},
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// TextAnalyzer extracts event details from raw cell text, memoizing results
// by the trimmed text. Analysis is a pure function of the text, so an
// analyzer may be reused across parses of different workbooks. Not safe for
// concurrent use.
type TextAnalyzer struct {
	cache map[string]CellDetails
}

// NewTextAnalyzer returns an analyzer with an empty memo cache.
func NewTextAnalyzer() *TextAnalyzer {
	return &TextAnalyzer{cache: make(map[string]CellDetails)}
}

// Analyze decomposes one cell's text into type, lecturers, location and the
// residual title. It never fails; on unrecognizable text every field is
// empty and the caller treats the cell as non-content. The returned
// Lecturers slice is a fresh copy on every call.
func (a *TextAnalyzer) Analyze(text string) CellDetails {
	s := strings.TrimSpace(text)
	details, ok := a.cache[s]
	if !ok {
		details = analyzeCellText(s)
		a.cache[s] = details
	}
	details.Lecturers = append([]string(nil), details.Lecturers...)
	return details
}

func analyzeCellText(s string) CellDetails {
	details := CellDetails{Raw: s}
	if s == "" {
		return details
	}

	padded := " " + strings.ToUpper(s)
	for _, kw := range typeKeywords {
		if strings.Contains(padded, strings.ToUpper(kw.key)) {
			details.Type = kw.tag
			break
		}
	}

	details.Lecturers = lecturerPattern.FindAllString(s, -1)

	for _, pat := range roomPatterns {
		if m := pat.FindString(s); m != "" {
			details.Location = strings.TrimSpace(m)
			break
		}
	}

	// The title is whatever survives removing everything recognized above,
	// plus the type tokens themselves, which stay noise even though the
	// type was already captured.
	t := counterPattern.ReplaceAllString(s, " ")
	for _, lec := range details.Lecturers {
		t = strings.Replace(t, lec, " ", 1)
	}
	if details.Location != "" {
		t = strings.Replace(t, details.Location, " ", 1)
	}
	for _, st := range typeTokenStrips {
		t = st.re.ReplaceAllString(t, st.repl)
	}
	t = whitespacePattern.ReplaceAllString(t, " ")
	details.Title = strings.Trim(t, " ;,\n\t")

	return details
}
