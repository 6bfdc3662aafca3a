// Package render turns screenshots into the Astro pages of the gallery.
//
// Screenshots are grouped into the manifest's albums by game with
// AssignAlbums; screenshots of unlisted games land in the "Other" album.
// AstroRenderer fills the page templates and Builder writes the files:
//
//	web/src/pages/<album page name>.astro   one per album
//	web/src/pages/index.astro               album covers and footer
//
// Templates contain HTML comment placeholders:
//
//	<!-- SCREENSHOTS -->  album template, replaced by <Screenshot /> components
//	<!-- ALBUMS -->       index template, replaced by <AlbumCover /> components
//	<!-- FOOTER -->       index template, replaced by <Footer date="..." />
package render
