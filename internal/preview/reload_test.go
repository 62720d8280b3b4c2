package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickrouge-dev/brickrouge/internal/config"
)

func dial(t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestReloadHubBroadcast(t *testing.T) {
	hub := NewReloadHub()
	ts := httptest.NewServer(hub)
	defer ts.Close()
	defer hub.Close()

	first := dial(t, ts, "/")
	second := dial(t, ts, "/")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 5*time.Second, 10*time.Millisecond)

	hub.NotifyCSS("brickrouge.css")
	assert.Equal(t, ReloadMessage{Type: ReloadTypeCSS, File: "brickrouge.css"}, readMessage(t, first))
	assert.Equal(t, ReloadMessage{Type: ReloadTypeCSS, File: "brickrouge.css"}, readMessage(t, second))

	hub.NotifyReload()
	assert.Equal(t, ReloadTypeFull, readMessage(t, first).Type)
}

func TestReloadHubForgetsClosedClients(t *testing.T) {
	hub := NewReloadHub()
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn := dial(t, ts, "/")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestServerHandleChanges(t *testing.T) {
	cfg := newProject(t, func(c *config.Config) {
		c.Preview.HotReload = true
		c.I18n.Locale = "fr"
	}, map[string]string{
		"locales/fr.yml": "button:\n  Ok: Valider\n",
	})
	srv := NewServer(ServerOptions{Config: cfg})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, body := get(t, ts, "/samples/button")
	assert.Contains(t, body, ReloadPath)

	conn := dial(t, ts, ReloadPath)
	require.Eventually(t, func() bool { return srv.reload.ClientCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	srv.handleChanges([]Change{{Path: "/p/assets/brickrouge.css", Type: ChangeCSS}})
	assert.Equal(t, ReloadMessage{Type: ReloadTypeCSS, File: "brickrouge.css"}, readMessage(t, conn))

	catalog := filepath.Join(cfg.CatalogsPath(), "fr.yml")
	require.NoError(t, os.WriteFile(catalog, []byte("button:\n  Ok: Envoyer\n"), 0644))
	srv.handleChanges([]Change{
		{Path: "/p/assets/brickrouge.css", Type: ChangeCSS},
		{Path: catalog, Type: ChangeCatalog},
	})
	assert.Equal(t, ReloadTypeFull, readMessage(t, conn).Type)

	status, body := get(t, ts, "/samples/button")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, ">Envoyer</button>")
}
