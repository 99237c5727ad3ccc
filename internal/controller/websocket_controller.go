package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-engine-go/internal/service"
	"github.com/lgbarn/chess-engine-go/internal/ws"
)

// WebSocketController runs the interactive play loop over a websocket:
// clients send move and resign messages, the server answers with state
// updates or errors.
type WebSocketController struct {
	gameService *service.GameService
}

// NewWebSocketController returns a controller over the given service.
func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{gameService: gameService}
}

// HandleConnection serves one websocket session. The game id comes from
// the upgraded route's path parameter.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")

	state, err := wsc.gameService.GetState(gameID)
	if err != nil {
		wsc.sendError(c, err)
		c.Close()
		return
	}
	wsc.sendState(c, ws.StatePayload{State: state})

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("websocket for game %s closed: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(c, err)
			continue
		}
		if done, err := wsc.handleMessage(c, gameID, msg); err != nil {
			wsc.sendError(c, err)
		} else if done {
			return
		}
	}
}

// handleMessage dispatches one frame; it reports done when the session
// should close.
func (wsc *WebSocketController) handleMessage(c *websocket.Conn, gameID string, msg ws.Message) (bool, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var payload ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return false, err
		}
		state, reply, err := wsc.gameService.PlayMove(gameID, payload.Move)
		if err != nil {
			return false, err
		}
		wsc.sendState(c, ws.StatePayload{State: state, EngineMove: reply})
		return false, nil

	case ws.MessageTypeResign:
		if err := wsc.gameService.Resign(gameID); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func (wsc *WebSocketController) sendState(c *websocket.Conn, payload ws.StatePayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal state payload: %v", err)
		return
	}
	c.WriteJSON(ws.Message{Type: ws.MessageTypeGameState, Payload: body})
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, err error) {
	body, merr := json.Marshal(ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		return
	}
	c.WriteJSON(ws.Message{Type: ws.MessageTypeError, Payload: body})
}
