package render

import (
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/model"
)

// AssignAlbums groups screenshots into the albums defined by defs.
//
// Each screenshot goes to the first album listing its game. Screenshots
// matching no album go to a trailing album named model.OtherAlbumName,
// which is always present. Screenshot order inside an album follows the
// input order.
func AssignAlbums(screenshots []*model.Screenshot, defs []config.AlbumDef) []*model.Album {
	albums := make([]*model.Album, 0, len(defs)+1)
	for _, def := range defs {
		albums = append(albums, model.NewAlbum(def.Name, def.Games))
	}
	other := model.NewAlbum(model.OtherAlbumName, nil)

	for _, shot := range screenshots {
		target := other
		for _, album := range albums {
			if album.HasGame(shot.Game) {
				target = album
				break
			}
		}
		target.AddScreenshot(shot)
	}

	return append(albums, other)
}
