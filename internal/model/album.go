package model

import "strings"

// OtherAlbumName is the name of the catch-all album holding screenshots
// whose game is not listed by any curated album.
const OtherAlbumName = "Other"

// Album is a named group of screenshots selected by game.
//
// Albums are defined in the manifest by a name and a list of game titles.
// Game titles are matched with exact string equality against Screenshot.Game.
//
// Example:
//
//	album := NewAlbum("Space Trips", []string{"Outer Wilds", "Elite Dangerous"})
//	if album.HasGame(shot.Game) {
//	    album.AddScreenshot(shot)
//	}
//	fmt.Println(album.PageName()) // "space_trips"
type Album struct {
	// Name is the display name of the album.
	Name string

	// Games lists the game titles whose screenshots belong to the album.
	Games []string

	// Screenshots holds the assigned screenshots in content order.
	Screenshots []*Screenshot
}

// NewAlbum creates an empty album for the given games.
func NewAlbum(name string, games []string) *Album {
	return &Album{
		Name:        name,
		Games:       games,
		Screenshots: []*Screenshot{},
	}
}

// HasGame reports whether game is one of the album's games.
func (a *Album) HasGame(game string) bool {
	for _, g := range a.Games {
		if g == game {
			return true
		}
	}
	return false
}

// AddScreenshot appends a screenshot to the album.
func (a *Album) AddScreenshot(s *Screenshot) {
	a.Screenshots = append(a.Screenshots, s)
}

// HasScreenshots returns true if at least one screenshot was assigned.
func (a *Album) HasScreenshots() bool {
	return len(a.Screenshots) > 0
}

// PageName returns the URL friendly page name of the album.
//
// Spaces become underscores, colons and apostrophes are dropped and the
// result is lower cased:
//
//	NewAlbum("ThiS is A'n: Album", nil).PageName() // "this_is_an_album"
func (a *Album) PageName() string {
	return pageNameReplacer.Replace(strings.ToLower(a.Name))
}

var pageNameReplacer = strings.NewReplacer(" ", "_", ":", "", "'", "")
