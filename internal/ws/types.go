// Package ws defines the websocket message envelope shared between the
// server and its clients.
package ws

import (
	"encoding/json"
)

// MessageType names the kinds of messages the play service understands.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeResign    MessageType = "resign"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload carries a player move in coordinate notation.
type MovePayload struct {
	Move string `json:"move"`
}

// StatePayload carries a game snapshot plus the engine's reply, if any.
type StatePayload struct {
	State      interface{} `json:"state"`
	EngineMove string      `json:"engine_move,omitempty"`
}

// ErrorPayload carries a human-readable failure description.
type ErrorPayload struct {
	Error string `json:"error"`
}
