package steam

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CanonicalDateLayout is the layout of every normalized date: "21 January 2024".
const CanonicalDateLayout = "02 January 2006"

const (
	dayFirstLayout   = "2 Jan, 2006"
	monthFirstLayout = "Jan 2, 2006"
)

// DateNormalizer converts Steam's capture date strings to CanonicalDateLayout.
//
// Steam prints dates in one of two orders and drops the year for the current
// calendar year:
//
//	"25 Jan, 2021 @ 12:34pm" -> "25 January 2021"
//	"Jan 25, 2021 @ 12:34pm" -> "25 January 2021"
//	"10 May @ 7:05am"        -> "10 May <current year>"
type DateNormalizer struct {
	now func() time.Time
}

// NewDateNormalizer creates a DateNormalizer using the wall clock for the
// current year.
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{now: time.Now}
}

// NewDateNormalizerAt creates a DateNormalizer whose current year comes from now.
func NewDateNormalizerAt(now func() time.Time) *DateNormalizer {
	return &DateNormalizer{now: now}
}

// Normalize parses raw and renders it in CanonicalDateLayout.
//
// Anything from the first '@' onward is a clock time and is ignored. A string
// starting with a letter is read month first, anything else day first. A
// string without a comma gets the current year appended.
//
// Returns a *DateFormatError if the remaining text matches neither layout.
func (n *DateNormalizer) Normalize(raw string) (string, error) {
	text := raw
	if i := strings.IndexByte(text, '@'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &DateFormatError{Input: raw}
	}

	layout := dayFirstLayout
	if first := []rune(text)[0]; unicode.IsLetter(first) {
		layout = monthFirstLayout
	}

	if !strings.Contains(text, ",") {
		text += ", " + strconv.Itoa(n.now().Year())
	}

	t, err := time.Parse(layout, text)
	if err != nil {
		return "", &DateFormatError{Input: raw, Err: err}
	}

	return t.Format(CanonicalDateLayout), nil
}

// NormalizeDate normalizes raw with a wall clock DateNormalizer.
func NormalizeDate(raw string) (string, error) {
	return NewDateNormalizer().Normalize(raw)
}
