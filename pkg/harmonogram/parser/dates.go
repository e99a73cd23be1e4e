package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthOrder fixes the scan order of the month table; two variants may both
// occur in one string and the earlier month wins.
var monthOrder = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

// monthVariants maps month numbers to accepted Polish month-name spellings,
// including diacritic-stripped and mojibake-degraded forms ('?' standing in
// for a mangled letter), since source file encodings are unreliable.
var monthVariants = map[string][]string{
	"01": {"stycznia"},
	"02": {"lutego"},
	"03": {"marca"},
	"04": {"kwietnia"},
	"05": {"maja"},
	"06": {"czerwca"},
	"07": {"lipca"},
	"08": {"sierpnia"},
	"09": {"wrzesnia", "września", "wrze?nia"},
	"10": {"października", "pazdziernika", "pa?dziernika"},
	"11": {"listopada"},
	"12": {"grudnia"},
}

// serialEpoch is spreadsheet serial day 0.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const dateLayout = "2006-01-02"

var (
	yearPattern  = regexp.MustCompile(`(20\d{2})`)
	dayPattern   = regexp.MustCompile(`\b(\d{1,2})\b`)
	alphaPattern = regexp.MustCompile(`[a-ząćęłńóśźż?]+`)
)

// DateNormalizer converts date-bearing cells into canonical YYYY-MM-DD
// strings, memoizing text parses by their literal content. Negative results
// ("" for unparseable text) are cached too. Values are pure functions of the
// text, so a normalizer may be reused across parses of different workbooks.
// Not safe for concurrent use.
type DateNormalizer struct {
	cache map[string]string
}

// NewDateNormalizer returns a normalizer with an empty memo cache.
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{cache: make(map[string]string)}
}

// Normalize resolves a cell to a UTC calendar date, or "" when the cell
// cannot be read as one. Native dates and numeric serials convert directly;
// anything else goes through the free-text parser.
func (n *DateNormalizer) Normalize(v CellValue) string {
	if v.Time != nil {
		return v.Time.UTC().Format(dateLayout)
	}
	if v.Serial != nil {
		d := serialEpoch.Add(time.Duration(*v.Serial * float64(24*time.Hour)))
		return d.UTC().Format(dateLayout)
	}
	return n.NormalizeText(v.Plain())
}

// NormalizeText parses a free-text Polish date ("12 września 2025"),
// returning "" when year, day or month cannot all be resolved.
func (n *DateNormalizer) NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}
	if cached, ok := n.cache[raw]; ok {
		return cached
	}
	iso := parsePolishDate(raw)
	n.cache[raw] = iso
	return iso
}

func parsePolishDate(raw string) string {
	s := strings.ToLower(raw)

	ym := yearPattern.FindStringSubmatch(s)
	if ym == nil {
		return ""
	}
	year, _ := strconv.Atoi(ym[1])

	dm := dayPattern.FindStringSubmatch(s)
	if dm == nil {
		return ""
	}
	day, _ := strconv.Atoi(dm[1])

	month := matchMonth(s)
	if month == 0 {
		return ""
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		// time.Date normalizes overflow (e.g. day 32); treat as unparseable.
		return ""
	}
	return t.Format(dateLayout)
}

func matchMonth(s string) time.Month {
	for _, num := range monthOrder {
		for _, variant := range monthVariants[num] {
			if strings.Contains(s, variant) {
				return monthNumber(num)
			}
		}
	}
	// The month token may be mangled beyond substring matching. Split into
	// alphabetic runs and compare the second run, with '?' restored to 'z'.
	parts := alphaPattern.FindAllString(s, -1)
	if len(parts) < 2 {
		return 0
	}
	mid := strings.ReplaceAll(parts[1], "?", "z")
	for _, num := range monthOrder {
		for _, variant := range monthVariants[num] {
			if mid == variant {
				return monthNumber(num)
			}
		}
	}
	return 0
}

func monthNumber(num string) time.Month {
	i, _ := strconv.Atoi(num)
	return time.Month(i)
}
