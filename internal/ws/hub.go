package ws

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"sync"
)

// codeAlphabet skips the symbols that are easy to misread when a code
// is shared verbally.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength  = 6
	codeRetries = 10
)

// Hub owns every live room and the connection->room registry. It is
// the only entry point for inbound frames, so each room sees a single
// writer per request while independent rooms stay concurrent.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	clientRoom map[string]string

	matches MatchRecorder
	origin  string
}

func NewHub(matches MatchRecorder, origin string) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		clientRoom: make(map[string]string),
		matches:    matches,
		origin:     origin,
	}
}

// HandleMessage dispatches one inbound frame from a connected client.
func (h *Hub) HandleMessage(c *Client, raw []byte) {
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("Hub.HandleMessage: client=%s bad frame: %v", c.ID, err)
		return
	}

	switch msg.Type {
	case MsgCreateGame:
		var p CreateGamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return
		}
		h.createGame(c, p.DisplayName)

	case MsgJoinGame:
		var p JoinGamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return
		}
		h.joinGame(c, p.RoomID, p.DisplayName)

	case MsgMakeMove:
		var p MakeMovePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return
		}
		if room := h.memberRoom(c, p.RoomID); room != nil {
			room.ApplyMove(c.ID, p.Cell, p.Symbol)
		}

	case MsgRestartGame:
		var p RestartGamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return
		}
		if room := h.memberRoom(c, p.RoomID); room != nil {
			room.Restart()
		}

	default:
		log.Printf("Hub.HandleMessage: client=%s unknown type=%q", c.ID, msg.Type)
	}
}

func (h *Hub) createGame(c *Client, name string) {
	h.mu.Lock()

	if _, bound := h.clientRoom[c.ID]; bound {
		h.mu.Unlock()
		c.sendMessage(Message{Type: MsgError, Payload: ErrorPayload{Message: "already in a room"}})
		return
	}

	code := h.newRoomCodeLocked()
	room := NewRoom(code, h.matches)
	// seat the creator before the room becomes reachable, so no join
	// can ever observe an empty room
	player := room.AddCreator(c, name)
	h.rooms[code] = room
	h.clientRoom[c.ID] = code
	roomsActive.Set(float64(len(h.rooms)))
	h.mu.Unlock()

	log.Printf("Hub.createGame: client=%s room=%s", c.ID, code)

	c.sendMessage(Message{Type: MsgGameCreated, Payload: GameCreatedPayload{
		RoomID:   code,
		Player:   player,
		IsHost:   true,
		ShareURL: h.shareURL(code),
	}})
}

func (h *Hub) joinGame(c *Client, roomID, name string) {
	h.mu.Lock()
	if _, bound := h.clientRoom[c.ID]; bound {
		h.mu.Unlock()
		c.sendMessage(Message{Type: MsgError, Payload: ErrorPayload{Message: "already in a room"}})
		return
	}
	room, ok := h.rooms[roomID]
	if !ok {
		h.mu.Unlock()
		c.sendMessage(Message{Type: MsgError, Payload: ErrorPayload{Message: "room not found"}})
		return
	}

	// seat and bind under the hub lock; a disconnect deleting the room
	// cannot interleave, so the binding never outlives its room
	ack, err := room.Join(c, name)
	if err != nil {
		h.mu.Unlock()
		c.sendMessage(Message{Type: MsgError, Payload: ErrorPayload{Message: err.Error()}})
		return
	}
	h.clientRoom[c.ID] = roomID
	h.mu.Unlock()

	log.Printf("Hub.joinGame: client=%s room=%s", c.ID, roomID)

	c.sendMessage(Message{Type: MsgGameJoined, Payload: ack})
}

// OnDisconnect purges the closing connection from its room and deletes
// the room once its last seat empties. Deletion is lazy, driven only
// from this path.
func (h *Hub) OnDisconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID, ok := h.clientRoom[c.ID]
	if !ok {
		return
	}
	delete(h.clientRoom, c.ID)

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}

	log.Printf("Hub.OnDisconnect: client=%s room=%s", c.ID, roomID)

	if room.RemovePlayer(c.ID) {
		delete(h.rooms, roomID)
		roomsActive.Set(float64(len(h.rooms)))
		log.Printf("Hub.OnDisconnect: room=%s empty, deleted", roomID)
	}
}

// Room resolves a live room by code.
func (h *Hub) Room(code string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[code]
	return room, ok
}

// ActiveRooms reports the number of live rooms.
func (h *Hub) ActiveRooms() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

// ConnectedClients reports the number of bound connections.
func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clientRoom)
}

// ShareURL builds the join link embedded in the create ack.
func (h *Hub) shareURL(code string) string {
	if h.origin == "" {
		return ""
	}
	return h.origin + "/?room=" + code
}

// memberRoom resolves the room for a move/restart frame, verifying the
// sender is actually bound to it. Frames against unknown or foreign
// rooms are dropped.
func (h *Hub) memberRoom(c *Client, roomID string) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.clientRoom[c.ID] != roomID {
		return nil
	}
	return h.rooms[roomID]
}

// newRoomCodeLocked draws short codes until one is unused. Collisions
// are vanishingly rare at this cardinality; after the retry budget the
// code grows a character per attempt, which cannot collide forever.
func (h *Hub) newRoomCodeLocked() string {
	length := codeLength
	for attempt := 0; ; attempt++ {
		code := randomCode(length)
		if _, taken := h.rooms[code]; !taken {
			return code
		}
		if attempt >= codeRetries {
			length++
		}
	}
}

func randomCode(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("room code entropy unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
