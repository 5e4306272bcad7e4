package ws

import "encoding/json"

// MessageType constants for the fight feed protocol.
const (
	// Server -> Client
	TypeFightResult = "fight_result"
	TypeError       = "error"
	TypePing        = "ping"
	TypePong        = "pong"
)

// Message wraps all WebSocket payloads with a type tag.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// FightResultPayload is broadcast to feed subscribers after each bout.
type FightResultPayload struct {
	FightID    string  `json:"fight_id"`
	BoxerA     string  `json:"boxer_a"`
	BoxerB     string  `json:"boxer_b"`
	Winner     string  `json:"winner"`
	SkillA     float64 `json:"skill_a"`
	SkillB     float64 `json:"skill_b"`
	RandomDraw float64 `json:"random_draw"`
	FoughtAt   string  `json:"fought_at"`
}

// NewMessage marshals a payload into a typed message. Marshal errors
// are impossible for the payload types above and are swallowed.
func NewMessage(msgType string, payload interface{}) Message {
	data, _ := json.Marshal(payload)
	return Message{Type: msgType, Payload: data}
}
