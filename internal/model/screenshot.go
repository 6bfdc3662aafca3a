package model

import "strings"

// Screenshot is one normalized entry of a Steam screenshot gallery.
//
// A Screenshot is produced once per visited detail page and is not modified
// afterwards. Its JSON form is the content.json contract consumed by the
// page renderer:
//
//	{"game": "Outer Wilds", "title": "Campfire", "link": "https://.../image.jpg", "date": "21 January 2024"}
type Screenshot struct {
	// Game is the title of the game the screenshot belongs to. Never empty.
	Game string `json:"game"`

	// Title is the user supplied caption with double quotes removed.
	// Empty when the screenshot has no caption.
	Title string `json:"title"`

	// Link is the absolute URL of the full resolution image, without query string.
	Link string `json:"link"`

	// Date is the capture date in "02 January 2006" form.
	Date string `json:"date"`
}

// Failure records a detail link that could not be turned into a Screenshot.
type Failure struct {
	// Link is the detail page URL that failed.
	Link string

	// Err is the fetch or parse error for the link.
	Err error
}

// Reason returns the failure cause as text.
func (f Failure) Reason() string {
	if f.Err == nil {
		return "unknown error"
	}
	return f.Err.Error()
}

// CountGames returns the number of distinct games among screenshots.
func CountGames(screenshots []*Screenshot) int {
	games := make(map[string]struct{}, len(screenshots))
	for _, s := range screenshots {
		games[s.Game] = struct{}{}
	}
	return len(games)
}

// StripQuery removes everything from the first '?' onward.
//
//	StripQuery("https://images.steamusercontent.com/ugc/1/ABC/?imw=5000") // "https://images.steamusercontent.com/ugc/1/ABC/"
func StripQuery(link string) string {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		return link[:i]
	}
	return link
}
