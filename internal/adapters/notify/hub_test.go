package notify_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/adapters/notify"
	"go.trai.ch/tana/internal/core/domain"
)

func dialHub(t *testing.T, hub *notify.Hub) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/events", notify.WSHandler(hub))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) notify.Event {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)

	var ev notify.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHub_WelcomeOnConnect(t *testing.T) {
	hub := notify.NewHub(logger.New())
	ws := dialHub(t, hub)

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"welcome"`)
}

func TestHub_PublishFansOutPerChange(t *testing.T) {
	hub := notify.NewHub(logger.New())
	ws := dialHub(t, hub)

	// Skip the welcome message.
	readWelcome(t, ws)

	hub.Publish(domain.Diff{
		AddedCollections:   []string{"one-piece"},
		RemovedCollections: []string{"naruto"},
		Chapters: map[string]domain.ChapterDiff{
			"berserk": {Added: []string{"c364.cbz"}, Removed: []string{"c001.cbz"}},
		},
	})

	events := make(map[string]notify.Event, 5)
	for range 5 {
		ev := readEvent(t, ws)
		events[ev.Type+"/"+ev.Collection] = ev

		require.NotEmpty(t, ev.ID)
		require.False(t, ev.Timestamp.IsZero())
	}

	added, ok := events[notify.EventCollectionAdded+"/one-piece"]
	require.True(t, ok)
	assert.Empty(t, added.Chapters)

	removed, ok := events[notify.EventCollectionRemoved+"/naruto"]
	require.True(t, ok)
	assert.Empty(t, removed.Chapters)

	chAdded, ok := events[notify.EventChaptersAdded+"/berserk"]
	require.True(t, ok)
	assert.Equal(t, []string{"c364.cbz"}, chAdded.Chapters)

	chRemoved, ok := events[notify.EventChaptersRemoved+"/berserk"]
	require.True(t, ok)
	assert.Equal(t, []string{"c001.cbz"}, chRemoved.Chapters)

	_, ok = events[notify.EventLibraryUpdated+"/"]
	assert.True(t, ok, "trailing library_updated summary expected")
}

func TestHub_EmptyDiffNotBroadcast(t *testing.T) {
	hub := notify.NewHub(logger.New())
	ws := dialHub(t, hub)
	readWelcome(t, ws)

	hub.Publish(domain.Diff{})

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := ws.ReadMessage()
	assert.Error(t, err) // deadline hit, nothing was sent
}

func TestHub_CountTracksClients(t *testing.T) {
	hub := notify.NewHub(logger.New())

	assert.Equal(t, 0, hub.Count())

	ws := dialHub(t, hub)
	readWelcome(t, ws)

	assert.Equal(t, 1, hub.Count())

	require.NoError(t, ws.Close())
	require.Eventually(t, func() bool {
		return hub.Count() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func readWelcome(t *testing.T, ws *websocket.Conn) {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(data), "welcome")
}
