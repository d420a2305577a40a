package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ConnectionConfig holds configuration for WebSocket connections
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	// SendBuffer is how many events a client may lag behind before it is
	// dropped as a slow consumer.
	SendBuffer  int
	CheckOrigin func(r *http.Request) bool
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		SendBuffer:      16,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// Connection is one client watching a match.
type Connection struct {
	ID          string
	MatchID     string
	ConnectedAt time.Time

	ws      *websocket.Conn
	manager *ConnectionManager
	// send is never closed. Shutdown is signalled through done, so a
	// broadcaster holding a stale reference can not panic on it.
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (c *Connection) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// offer queues data without blocking. It reports false when the client is
// too far behind to take it.
func (c *Connection) offer(data []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// BroadcastMessage is a queued event for every client of a match
type BroadcastMessage struct {
	MatchID string
	Event   *MatchEvent
}

// ConnectionStats summarizes the open connections
type ConnectionStats struct {
	TotalConnections int            `json:"total_connections"`
	ActiveMatches    int            `json:"active_matches"`
	Matches          map[string]int `json:"match_connections"`
}

// ConnectionManager groups clients into per-match rooms and fans match
// events out to them.
type ConnectionManager struct {
	mu    sync.RWMutex
	rooms map[string]map[*Connection]struct{}

	upgrader websocket.Upgrader
	config   ConnectionConfig

	broadcastCh chan BroadcastMessage
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	if config.SendBuffer <= 0 {
		config.SendBuffer = DefaultConnectionConfig().SendBuffer
	}
	return &ConnectionManager{
		rooms: make(map[string]map[*Connection]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan BroadcastMessage, 256),
	}
}

// Start processes broadcast messages until ctx is cancelled
func (cm *ConnectionManager) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		}
	}
}

func (cm *ConnectionManager) newConnection(ws *websocket.Conn, matchID string) *Connection {
	return &Connection{
		ID:          uuid.New().String(),
		MatchID:     matchID,
		ConnectedAt: time.Now(),
		ws:          ws,
		manager:     cm,
		send:        make(chan []byte, cm.config.SendBuffer),
		done:        make(chan struct{}),
	}
}

// UpgradeConnection upgrades an HTTP connection to WebSocket and joins it
// to the room for matchID.
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, matchID string) error {
	ws, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade match %s watcher: %w", matchID, err)
	}

	conn := cm.newConnection(ws, matchID)
	cm.join(conn)

	go conn.writePump()
	go conn.readPump()

	log.Info().
		Str("connection_id", conn.ID).
		Str("match_id", matchID).
		Msg("match watcher connected")
	return nil
}

func (cm *ConnectionManager) join(conn *Connection) {
	cm.mu.Lock()
	room, ok := cm.rooms[conn.MatchID]
	if !ok {
		room = make(map[*Connection]struct{})
		cm.rooms[conn.MatchID] = room
	}
	room[conn] = struct{}{}
	size := len(room)
	cm.mu.Unlock()

	log.Debug().
		Str("connection_id", conn.ID).
		Str("match_id", conn.MatchID).
		Int("watchers", size).
		Msg("joined match room")
}

// leave removes conn from its room and signals its pumps to stop. It is
// safe to call more than once.
func (cm *ConnectionManager) leave(conn *Connection) {
	cm.mu.Lock()
	room := cm.rooms[conn.MatchID]
	_, present := room[conn]
	if present {
		delete(room, conn)
		if len(room) == 0 {
			delete(cm.rooms, conn.MatchID)
		}
	}
	cm.mu.Unlock()

	conn.close()
	if present {
		log.Info().
			Str("connection_id", conn.ID).
			Str("match_id", conn.MatchID).
			Msg("match watcher left")
	}
}

// BroadcastToMatch queues event for every client watching matchID. The event
// is dropped when the queue is full.
func (cm *ConnectionManager) BroadcastToMatch(matchID string, event *MatchEvent) {
	select {
	case cm.broadcastCh <- BroadcastMessage{MatchID: matchID, Event: event}:
	default:
		log.Warn().Str("match_id", matchID).Msg("broadcast queue full, dropping event")
	}
}

func (cm *ConnectionManager) handleBroadcast(message BroadcastMessage) {
	data, err := json.Marshal(message.Event)
	if err != nil {
		log.Error().Err(err).Str("match_id", message.MatchID).Msg("encode match event")
		return
	}

	var delivered int
	var slow []*Connection

	cm.mu.RLock()
	for conn := range cm.rooms[message.MatchID] {
		if conn.offer(data) {
			delivered++
		} else {
			slow = append(slow, conn)
		}
	}
	cm.mu.RUnlock()

	for _, conn := range slow {
		log.Warn().
			Str("connection_id", conn.ID).
			Str("match_id", conn.MatchID).
			Msg("dropping slow match watcher")
		cm.leave(conn)
	}

	log.Debug().
		Str("event_type", string(message.Event.Type)).
		Str("match_id", message.MatchID).
		Int("delivered", delivered).
		Int("dropped", len(slow)).
		Msg("match event broadcast")
}

// ConnectionCount returns the number of clients watching matchID
func (cm *ConnectionManager) ConnectionCount(matchID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.rooms[matchID])
}

func (cm *ConnectionManager) Stats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{
		ActiveMatches: len(cm.rooms),
		Matches:       make(map[string]int, len(cm.rooms)),
	}
	for matchID, room := range cm.rooms {
		stats.TotalConnections += len(room)
		stats.Matches[matchID] = len(room)
	}
	return stats
}

// writePump owns every write to the socket.
func (c *Connection) writePump() {
	cfg := c.manager.config
	ticker := time.NewTicker(cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.ws.Close()
		c.manager.leave(c)
	}()

	write := func(messageType int, data []byte) error {
		c.ws.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
		return c.ws.WriteMessage(messageType, data)
	}

	for {
		select {
		case <-c.done:
			_ = write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		case data := <-c.send:
			if err := write(websocket.TextMessage, data); err != nil {
				log.Debug().Err(err).Str("connection_id", c.ID).Msg("write to match watcher failed")
				return
			}
		case <-ticker.C:
			if err := write(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("connection_id", c.ID).Msg("ping to match watcher failed")
				return
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed.
// Watchers only listen; anything they send is discarded.
func (c *Connection) readPump() {
	cfg := c.manager.config
	defer c.manager.leave(c)

	c.ws.SetReadLimit(cfg.MaxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("connection_id", c.ID).Msg("match watcher closed unexpectedly")
			}
			return
		}
	}
}
