package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varadarohokale/boxing-arena/internal/ring"
	"github.com/varadarohokale/boxing-arena/pkg/http/ws"
)

func dialFeed(t *testing.T, feed *FightFeed) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(feed.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestFightFeedBroadcast(t *testing.T) {
	hub := ws.NewHub(zerolog.Nop())
	feed := NewFightFeed(hub, zerolog.Nop())

	conn := dialFeed(t, feed)

	// Registration happens in the handler goroutine after upgrade.
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	rec := ring.FightRecord{
		ID:         uuid.New(),
		BoxerAName: "Rocky",
		BoxerBName: "Apollo",
		WinnerName: "Rocky",
		SkillA:     1057.45,
		SkillB:     1237.8,
		RandomDraw: 0.5,
		FoughtAt:   time.Now().UTC(),
	}
	feed.AnnounceFight(rec)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, ws.TypeFightResult, msg.Type)
	assert.Contains(t, string(msg.Payload), `"winner":"Rocky"`)
}

func TestFightFeedPingPong(t *testing.T) {
	hub := ws.NewHub(zerolog.Nop())
	feed := NewFightFeed(hub, zerolog.Nop())

	conn := dialFeed(t, feed)

	require.NoError(t, conn.WriteJSON(ws.Message{Type: ws.TypePing}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, ws.TypePong, msg.Type)
}

func TestHubDropsDeadSubscribers(t *testing.T) {
	hub := ws.NewHub(zerolog.Nop())
	feed := NewFightFeed(hub, zerolog.Nop())

	conn := dialFeed(t, feed)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}
