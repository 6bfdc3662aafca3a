// Package model defines the core data structures used throughout
// the virtual-moments application.
//
// # Screenshot
//
// Screenshot is the normalized record produced for every screenshot detail
// page of a Steam profile:
//
//	shot := &model.Screenshot{
//	    Game:  "Outer Wilds",
//	    Title: "Campfire",
//	    Link:  model.StripQuery(src),
//	    Date:  "21 January 2024",
//	}
//
// A detail link that could not be processed is reported as a Failure
// carrying the link and the error.
//
// # Album
//
// Album groups screenshots by game for the rendered gallery:
//
//	album := model.NewAlbum("Space Trips", []string{"Outer Wilds"})
//	fmt.Println(album.PageName()) // "space_trips"
//
// Screenshots whose game belongs to no album end up in the album named
// OtherAlbumName.
package model
