package web

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/breakout-arcade/internal/games/breakout"
)

// Client to server message types.
const (
	InputKeyDown = "key_down"
	InputKeyUp   = "key_up"
	InputPointer = "pointer"
	InputStart   = "start"
	InputPause   = "pause"
	InputResume  = "resume"
	InputToggle  = "toggle"
	InputRestart = "restart"
)

// Server to client message types.
const (
	MsgHello  = "hello"
	MsgFrame  = "frame"
	MsgShow   = "show"
	MsgHide   = "hide"
	MsgResult = "result"
	MsgError  = "error"
)

// InputMessage is a browser event forwarded to the game.
type InputMessage struct {
	Type string  `json:"type"`
	Key  string  `json:"key,omitempty"` // "left" or "right" for key events
	X    float64 `json:"x,omitempty"`   // Surface X for pointer events
}

// ParseInput decodes and checks a client message.
func ParseInput(data []byte) (InputMessage, error) {
	var in InputMessage
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("decode input: %w", err)
	}

	switch in.Type {
	case InputKeyDown, InputKeyUp:
		if _, err := parseDirection(in.Key); err != nil {
			return in, err
		}
	case InputPointer, InputStart, InputPause, InputResume, InputToggle, InputRestart:
	default:
		return in, fmt.Errorf("unknown input type %q", in.Type)
	}
	return in, nil
}

func parseDirection(key string) (breakout.Direction, error) {
	switch key {
	case "left":
		return breakout.DirLeft, nil
	case "right":
		return breakout.DirRight, nil
	}
	return 0, fmt.Errorf("unknown key %q", key)
}

// Hello describes the playfield so the page can size its canvas.
type Hello struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Background string  `json:"background"`
}

// ResultPayload is the end-of-game announcement.
type ResultPayload struct {
	Outcome string `json:"outcome"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// ServerMessage is everything the server sends. Only the fields for
// Type are set.
type ServerMessage struct {
	Type     string             `json:"type"`
	Hello    *Hello             `json:"hello,omitempty"`
	Commands []DrawCommand      `json:"commands,omitempty"`
	Status   *breakout.Snapshot `json:"status,omitempty"`
	Overlay  string             `json:"overlay,omitempty"`
	Result   *ResultPayload     `json:"result,omitempty"`
	Error    string             `json:"error,omitempty"`
}
