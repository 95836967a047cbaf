package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/games/breakout"
)

const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Session runs one game for one WebSocket client.
//
// The game is owned by the goroutine in Run. The read pump forwards
// decoded inputs to it over a channel and the write pump drains the
// outgoing queue, so nothing else touches the game.
type Session struct {
	id       string
	conn     *websocket.Conn
	send     chan []byte
	inputs   chan inbound
	done     chan struct{} // Closed when the write pump exits
	interval time.Duration
	logger   *log.Logger

	game     *breakout.Game
	frames   *breakout.FrameQueue
	recorder *Recorder
	keys     [2]bool // Browser key state, indexed by breakout.Direction
}

// inbound is a decoded client message or the reason it was rejected.
type inbound struct {
	msg InputMessage
	err error
}

// sessionChrome turns overlay and result callbacks into messages.
type sessionChrome struct {
	s *Session
}

func (c sessionChrome) ShowOverlay(name string) {
	c.s.enqueue(ServerMessage{Type: MsgShow, Overlay: name})
}

func (c sessionChrome) HideOverlay(name string) {
	c.s.enqueue(ServerMessage{Type: MsgHide, Overlay: name})
}

func (c sessionChrome) Announce(r breakout.Result) {
	c.s.enqueue(ServerMessage{Type: MsgResult, Result: &ResultPayload{
		Outcome: r.Outcome.String(),
		Score:   r.Score,
		Message: r.Message,
	}})
}

// NewSession creates a session and queues the hello and start screen.
func NewSession(id string, conn *websocket.Conn, cfg config.BreakoutConfig, tickRate int, logger *log.Logger) *Session {
	if tickRate <= 0 {
		tickRate = cfg.Loop.TickRate
	}
	s := &Session{
		id:       id,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		inputs:   make(chan inbound),
		done:     make(chan struct{}),
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
		frames:   breakout.NewFrameQueue(),
		recorder: NewRecorder(cfg.Surface.Width, cfg.Surface.Height),
	}

	s.enqueue(ServerMessage{Type: MsgHello, Hello: &Hello{
		Width:      cfg.Surface.Width,
		Height:     cfg.Surface.Height,
		Background: cfg.Surface.Background,
	}})
	s.game = breakout.New(cfg, s.recorder, s.frames,
		breakout.WithChrome(sessionChrome{s}),
		breakout.WithLogger(logger),
	)
	return s
}

// Run drives the game until the client disconnects or ctx is done.
func (s *Session) Run(ctx context.Context) {
	go s.writePump()
	go s.readPump()

	defer func() {
		close(s.send)
		<-s.done
		_ = s.conn.Close()
	}()

	s.flush()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case in, ok := <-s.inputs:
			if !ok {
				return
			}
			if in.err != nil {
				s.enqueue(ServerMessage{Type: MsgError, Error: in.err.Error()})
				continue
			}
			s.apply(in.msg)
			s.flush()
		case <-ticker.C:
			s.frames.RunFrame()
			s.flush()
		}
	}
}

// apply forwards one input to the game.
func (s *Session) apply(in InputMessage) {
	switch in.Type {
	case InputKeyDown, InputKeyUp:
		dir, err := parseDirection(in.Key)
		if err != nil {
			return
		}
		s.keys[dir] = in.Type == InputKeyDown
		if s.keys[dir] {
			s.game.KeyDown(dir)
		} else {
			s.game.KeyUp(dir)
		}
	case InputPointer:
		s.game.PointerMove(in.X)
	case InputStart:
		s.game.Start()
	case InputPause:
		s.game.Pause()
	case InputResume:
		s.game.Resume()
		s.syncKeys()
	case InputToggle:
		s.game.Toggle()
		s.syncKeys()
	case InputRestart:
		s.game.ReturnToStart()
		s.game.Start()
	}
}

// syncKeys releases directions the browser let go of while the game was
// not accepting input.
func (s *Session) syncKeys() {
	if s.game.Phase() != breakout.PhaseRunning {
		return
	}
	controls := s.game.State().Controls
	if controls.Left && !s.keys[breakout.DirLeft] {
		s.game.KeyUp(breakout.DirLeft)
	}
	if controls.Right && !s.keys[breakout.DirRight] {
		s.game.KeyUp(breakout.DirRight)
	}
}

// flush sends the latest frame if the game drew since the last flush.
func (s *Session) flush() {
	commands, ok := s.recorder.Flush()
	if !ok {
		return
	}
	snap := s.game.Snapshot()
	s.enqueue(ServerMessage{Type: MsgFrame, Commands: commands, Status: &snap})
}

// enqueue queues a message for the write pump. Frames are dropped when
// the client falls behind; everything else waits for room in the queue.
func (s *Session) enqueue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("encode message", "type", msg.Type, "error", err)
		return
	}

	if msg.Type == MsgFrame {
		select {
		case s.send <- data:
		default:
			s.logger.Debug("frame dropped", "session", s.id)
		}
		return
	}

	select {
	case s.send <- data:
	case <-s.done:
	}
}

// readPump decodes client messages until the connection fails.
func (s *Session) readPump() {
	defer close(s.inputs)

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "session", s.id, "error", err)
			}
			return
		}

		in, err := ParseInput(payload)
		select {
		case s.inputs <- inbound{msg: in, err: err}:
		case <-s.done:
			return
		}
	}
}

// writePump writes queued messages and keeps the connection alive.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(s.done)
		_ = s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
