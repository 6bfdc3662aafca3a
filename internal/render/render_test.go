package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScreenshots() []*model.Screenshot {
	return []*model.Screenshot{
		{Game: "Game 1", Title: "Test title 1", Link: "https://test-link1.com", Date: "21 January 2024"},
		{Game: "Game 3", Title: "Loose", Link: "https://test-link3.com", Date: "22 January 2024"},
		{Game: "Game 2", Title: "Test title 2", Link: "https://test-link2.com", Date: "25 January 2025"},
		{Game: "Game 1", Title: "Again", Link: "https://test-link4.com", Date: "26 January 2025"},
	}
}

func albumNames(albums []*model.Album) []string {
	names := make([]string, len(albums))
	for i, a := range albums {
		names[i] = a.Name
	}
	return names
}

func links(album *model.Album) []string {
	out := make([]string, len(album.Screenshots))
	for i, s := range album.Screenshots {
		out[i] = s.Link
	}
	return out
}

func TestAssignAlbums(t *testing.T) {
	defs := []config.AlbumDef{
		{Name: "First", Games: []string{"Game 1"}},
		{Name: "Second", Games: []string{"Game 2", "Game 1"}},
	}

	albums := AssignAlbums(testScreenshots(), defs)

	if diff := cmp.Diff([]string{"First", "Second", "Other"}, albumNames(albums)); diff != "" {
		t.Errorf("album names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"https://test-link1.com", "https://test-link4.com"}, links(albums[0])); diff != "" {
		t.Errorf("first album mismatch (-want +got):\n%s", diff)
	}
	// Game 1 is listed by both albums but only goes to the first.
	if diff := cmp.Diff([]string{"https://test-link2.com"}, links(albums[1])); diff != "" {
		t.Errorf("second album mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"https://test-link3.com"}, links(albums[2])); diff != "" {
		t.Errorf("other album mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignAlbums_NoDefs(t *testing.T) {
	albums := AssignAlbums(testScreenshots(), nil)
	require.Len(t, albums, 1)
	assert.Equal(t, model.OtherAlbumName, albums[0].Name)
	assert.Len(t, albums[0].Screenshots, 4)

	empty := AssignAlbums(nil, []config.AlbumDef{{Name: "A", Games: []string{"x"}}})
	require.Len(t, empty, 2)
	assert.False(t, empty[1].HasScreenshots())
}

func testAlbum() *model.Album {
	album := model.NewAlbum("Test album", []string{"Game 1", "Game 2"})
	album.AddScreenshot(&model.Screenshot{Game: "Game 1", Title: "Test title 1", Link: "https://test-link1.com", Date: "21 January 2024"})
	album.AddScreenshot(&model.Screenshot{Game: "Game 2", Title: "Test title 2", Link: "https://test-link2.com", Date: "25 January 2025"})
	return album
}

func fixedClock() time.Time {
	return time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
}

func TestAstroRenderer_AlbumContent(t *testing.T) {
	r := NewAstroRenderer("/VirtualMoments")

	content := r.AlbumContent(testAlbum())

	assert.Equal(t,
		`<Screenshot src="https://test-link1.com" alt="Test title 1" date="21 January 2024" />`+
			`<Screenshot src="https://test-link2.com" alt="Test title 2" date="25 January 2025" />`,
		content)
}

func TestAstroRenderer_AlbumCover(t *testing.T) {
	r := NewAstroRenderer("/VirtualMoments/")
	album := testAlbum()

	assert.Equal(t, `<AlbumCover name="Test album" path="/VirtualMoments/test_album/" />`, r.AlbumCover(album, ""))
	assert.Equal(t,
		`<AlbumCover name="Test album" path="/VirtualMoments/test_album/" cover="/VirtualMoments/covers/test_album.jpg" />`,
		r.AlbumCover(album, r.CoverPath(album)))
}

func TestAstroRenderer_EscapesQuotes(t *testing.T) {
	album := model.NewAlbum(`The "Best"`, nil)
	cover := NewAstroRenderer("").AlbumCover(album, "")
	assert.Contains(t, cover, `name="The &quot;Best&quot;"`)
}

func TestAstroRenderer_AlbumPage(t *testing.T) {
	template := `
		<html>
			<body>
				<!-- SCREENSHOTS -->
			</body>
		</html>`

	page := NewAstroRenderer("/VirtualMoments").AlbumPage(template, testAlbum())

	assert.Contains(t, page, "<html>")
	assert.Contains(t, page, "</html>")
	assert.NotContains(t, page, PlaceholderScreenshots)
	assert.Contains(t, page, `<Screenshot src="https://test-link1.com" alt="Test title 1" date="21 January 2024" />`)
}

func TestAstroRenderer_IndexPage(t *testing.T) {
	template := `
		<html>
			<body>
				<!-- ALBUMS -->
				<!-- FOOTER -->
			</body>
		</html>`

	r := NewAstroRenderer("/VirtualMoments").WithClock(fixedClock)
	album := testAlbum()
	other := model.NewAlbum(model.OtherAlbumName, nil)

	page := r.IndexPage(template, []*model.Album{album, other}, map[string]string{"other": "/VirtualMoments/covers/other.jpg"})

	assert.Contains(t, page, `<AlbumCover name="Test album" path="/VirtualMoments/test_album/" />`)
	assert.Contains(t, page, `<AlbumCover name="Other" path="/VirtualMoments/other/" cover="/VirtualMoments/covers/other.jpg" />`)
	assert.Contains(t, page, `<Footer date="03 February 2025" />`)
	assert.Less(t, strings.Index(page, "Test album"), strings.Index(page, `name="Other"`))
}

type stubImages struct {
	data []byte
	err  error
}

func (s stubImages) DownloadBytes(context.Context, string) ([]byte, error) {
	return s.data, s.err
}

func writeTemplates(t *testing.T, dir string) *config.Settings {
	t.Helper()
	settings := config.DefaultSettings()
	settings.PagesDir = filepath.Join(dir, "pages")
	settings.AlbumTemplate = filepath.Join(dir, "album_template.astro")
	settings.IndexTemplate = filepath.Join(dir, "index_template.astro")
	settings.CoversDir = filepath.Join(dir, "covers")
	settings.CoverSize = 8

	require.NoError(t, os.WriteFile(settings.AlbumTemplate, []byte("<main><!-- SCREENSHOTS --></main>"), 0644))
	require.NoError(t, os.WriteFile(settings.IndexTemplate, []byte("<main><!-- ALBUMS --></main><!-- FOOTER -->"), 0644))
	return settings
}

func TestBuilder_Build(t *testing.T) {
	dir := t.TempDir()
	settings := writeTemplates(t, dir)
	manifest := &config.Manifest{Albums: []config.AlbumDef{{Name: "Space: Trips", Games: []string{"Game 1"}}}}

	res, err := NewBuilder(settings, nil, nil).
		WithRenderer(NewAstroRenderer(settings.SiteBasePath).WithClock(fixedClock)).
		Build(context.Background(), manifest, testScreenshots())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(settings.PagesDir, "space_trips.astro"),
		filepath.Join(settings.PagesDir, "other.astro"),
		filepath.Join(settings.PagesDir, "index.astro"),
	}, res.Pages)

	album, err := os.ReadFile(res.Pages[0])
	require.NoError(t, err)
	assert.Equal(t,
		`<main><Screenshot src="https://test-link1.com" alt="Test title 1" date="21 January 2024" />`+
			`<Screenshot src="https://test-link4.com" alt="Again" date="26 January 2025" /></main>`,
		string(album))

	index, err := os.ReadFile(res.Pages[2])
	require.NoError(t, err)
	assert.Equal(t,
		`<main><AlbumCover name="Space: Trips" path="/VirtualMoments/space_trips/" />`+
			`<AlbumCover name="Other" path="/VirtualMoments/other/" /></main><Footer date="03 February 2025" />`,
		string(index))
}

func TestBuilder_MissingTemplate(t *testing.T) {
	settings := config.DefaultSettings()
	settings.AlbumTemplate = filepath.Join(t.TempDir(), "missing.astro")

	_, err := NewBuilder(settings, nil, nil).Build(context.Background(), &config.Manifest{}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuilder_Covers(t *testing.T) {
	dir := t.TempDir()
	settings := writeTemplates(t, dir)
	settings.GenerateCovers = true

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 16))))

	manifest := &config.Manifest{Albums: []config.AlbumDef{{Name: "First", Games: []string{"Game 1"}}}}
	res, err := NewBuilder(settings, stubImages{data: buf.Bytes()}, nil).
		Build(context.Background(), manifest, testScreenshots())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"first": "/VirtualMoments/covers/first.jpg",
		"other": "/VirtualMoments/covers/other.jpg",
	}, res.Covers)
	assert.FileExists(t, filepath.Join(settings.CoversDir, "first.jpg"))

	index, err := os.ReadFile(filepath.Join(settings.PagesDir, "index.astro"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `cover="/VirtualMoments/covers/first.jpg"`)
}

func TestBuilder_CoverFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	settings := writeTemplates(t, dir)
	settings.GenerateCovers = true

	res, err := NewBuilder(settings, stubImages{err: errors.New("offline")}, nil).
		Build(context.Background(), &config.Manifest{}, testScreenshots())
	require.NoError(t, err)
	assert.Empty(t, res.Covers)
	assert.Len(t, res.Pages, 2)
}
