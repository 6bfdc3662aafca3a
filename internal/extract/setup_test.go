package extract

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/handiism/virtual-moments/internal/browser"
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetcher(t *testing.T) {
	settings := config.DefaultSettings()
	client := NewClient(settings, nil)

	settings.UseBrowser = true
	assert.IsType(t, &browser.ScrollFetcher{}, NewFetcher(settings, client, nil))

	settings.UseBrowser = false
	assert.IsType(t, &browser.StaticFetcher{}, NewFetcher(settings, client, nil))
}

func TestNew_StaticEndToEnd(t *testing.T) {
	mux := nethttp.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/id/someone/screenshots/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		fmt.Fprintf(w, `<a href="%[1]s/sharedfiles/filedetails/?id=1">a</a><a href="%[1]s/sharedfiles/filedetails/?id=2">b</a>`, server.URL)
	})
	mux.HandleFunc("/sharedfiles/filedetails/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Query().Get("id") == "2" {
			nethttp.NotFound(w, r)
			return
		}
		fmt.Fprint(w, detailPage(1))
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	settings := config.DefaultSettings()
	settings.UseBrowser = false
	settings.MaxRetries = 0

	res, err := New(settings, nil, nil).Run(context.Background(), server.URL+"/id/someone")
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "Game 1", res.Records[0].Game)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, server.URL+"/sharedfiles/filedetails/?id=2", res.Failures[0].Link)
	assert.Contains(t, res.Failures[0].Reason(), "404")
}
