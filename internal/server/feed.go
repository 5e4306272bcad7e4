package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/ring"
	"github.com/varadarohokale/boxing-arena/pkg/http/ws"
)

// WSUpgrader handles WebSocket upgrades for the fight feed.
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The feed is read-only broadcast data, open to any origin.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// FightFeed bridges completed fights onto the WebSocket hub.
type FightFeed struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

// NewFightFeed builds the feed around a hub.
func NewFightFeed(hub *ws.Hub, logger zerolog.Logger) *FightFeed {
	return &FightFeed{
		hub:    hub,
		logger: logger.With().Str("component", "fight_feed").Logger(),
	}
}

// AnnounceFight broadcasts a fight result to all subscribers.
func (f *FightFeed) AnnounceFight(rec ring.FightRecord) {
	f.hub.Broadcast(ws.NewMessage(ws.TypeFightResult, ws.FightResultPayload{
		FightID:    rec.ID.String(),
		BoxerA:     rec.BoxerAName,
		BoxerB:     rec.BoxerBName,
		Winner:     rec.WinnerName,
		SkillA:     rec.SkillA,
		SkillB:     rec.SkillB,
		RandomDraw: rec.RandomDraw,
		FoughtAt:   rec.FoughtAt.Format(time.RFC3339),
	}))
}

// HandleWebSocket upgrades GET /ws/fights and keeps the subscriber
// registered until the connection drops. Inbound traffic is ignored
// except for protocol pings.
func (f *FightFeed) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	rawConn, err := WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn := ws.NewConnection(rawConn)
	id := f.hub.Register(conn)
	defer f.hub.Unregister(id)

	for {
		_, data, err := rawConn.ReadMessage()
		if err != nil {
			return
		}

		var msg ws.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type == ws.TypePing {
			_ = conn.Send(ws.Message{Type: ws.TypePong})
		}
	}
}
