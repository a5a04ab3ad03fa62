package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tictactoe_arena/internal/config"
	"tictactoe_arena/internal/game"
	httpserver "tictactoe_arena/internal/http"
	"tictactoe_arena/internal/service"
	"tictactoe_arena/internal/ws"
)

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func guestToken(t *testing.T, serverURL, name string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"display_name": name})
	res, err := http.Post(serverURL+"/api/v1/auth/guest", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("guest auth: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("guest auth status %d", res.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode guest auth: %v", err)
	}
	return out.Token
}

// startReader runs a single reader goroutine per connection so nothing
// calls ReadMessage concurrently.
func startReader(conn *websocket.Conn) chan frame {
	out := make(chan frame, 32)
	go func() {
		defer close(out)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var f frame
			if err := json.Unmarshal(msg, &f); err != nil {
				continue
			}
			out <- f
		}
	}()
	return out
}

func waitFor(t *testing.T, ch chan frame, msgType string) json.RawMessage {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case f, ok := <-ch:
			if !ok {
				t.Fatalf("connection closed while waiting for %s", msgType)
			}
			if f.Type == ws.MsgError {
				t.Fatalf("error frame while waiting for %s: %s", msgType, f.Payload)
			}
			if f.Type == msgType {
				return f.Payload
			}
		case <-deadline:
			t.Fatalf("timeout waiting for %s", msgType)
		}
	}
}

func sendFrame(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	data, _ := json.Marshal(ws.Message{Type: msgType, Payload: payload})
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

func TestE2E_FullMatch(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		APIRateLimit:  100,
		APIRateWindow: time.Minute,
	}
	httpserver.RegisterRoutes(r, nil, cfg)

	ts := httptest.NewServer(r)
	defer ts.Close()

	tokenA := guestToken(t, ts.URL, "Alice")
	tokenB := guestToken(t, ts.URL, "Bob")

	wsBase := strings.Replace(ts.URL, "http", "ws", 1) + "/ws?token="

	connA, _, err := websocket.DefaultDialer.Dial(wsBase+tokenA, nil)
	if err != nil {
		t.Fatalf("dial A: %v", err)
	}
	defer connA.Close()

	connB, _, err := websocket.DefaultDialer.Dial(wsBase+tokenB, nil)
	if err != nil {
		t.Fatalf("dial B: %v", err)
	}
	defer connB.Close()

	chA := startReader(connA)
	chB := startReader(connB)

	// Alice opens a room
	sendFrame(t, connA, ws.MsgCreateGame, ws.CreateGamePayload{DisplayName: "Alice"})
	var created ws.GameCreatedPayload
	if err := json.Unmarshal(waitFor(t, chA, ws.MsgGameCreated), &created); err != nil {
		t.Fatalf("decode game_created: %v", err)
	}
	if created.Player.Symbol != game.X || !created.IsHost {
		t.Fatalf("creator must host as X, got %+v", created)
	}

	// Bob joins by code; both sides see the match start
	sendFrame(t, connB, ws.MsgJoinGame, ws.JoinGamePayload{RoomID: created.RoomID, DisplayName: "Bob"})

	var start ws.GameStartPayload
	if err := json.Unmarshal(waitFor(t, chA, ws.MsgGameStart), &start); err != nil {
		t.Fatalf("decode game_start: %v", err)
	}
	if len(start.Players) != 2 || start.CurrentTurn != game.X || start.Status != ws.StatusPlaying {
		t.Fatalf("unexpected game_start: %+v", start)
	}
	waitFor(t, chB, ws.MsgGameStart)
	waitFor(t, chB, ws.MsgGameJoined)

	// X drives the left column: 0, 3, 6 with O answering 1, 4
	plays := []struct {
		conn *websocket.Conn
		cell int
		s    game.Symbol
	}{
		{connA, 0, game.X},
		{connB, 1, game.O},
		{connA, 3, game.X},
		{connB, 4, game.O},
		{connA, 6, game.X},
	}

	var lastA, lastB ws.Snapshot
	for _, p := range plays {
		sendFrame(t, p.conn, ws.MsgMakeMove, ws.MakeMovePayload{RoomID: created.RoomID, Cell: p.cell, Symbol: p.s})
		if err := json.Unmarshal(waitFor(t, chA, ws.MsgGameUpdate), &lastA); err != nil {
			t.Fatalf("decode game_update A: %v", err)
		}
		if err := json.Unmarshal(waitFor(t, chB, ws.MsgGameUpdate), &lastB); err != nil {
			t.Fatalf("decode game_update B: %v", err)
		}
	}

	for name, snap := range map[string]ws.Snapshot{"A": lastA, "B": lastB} {
		if snap.Status != ws.StatusFinished || snap.Winner != game.X || snap.IsDraw {
			t.Fatalf("client %s: expected X win, got %+v", name, snap)
		}
	}

	// restart brings back a clean board for the same pair
	sendFrame(t, connA, ws.MsgRestartGame, ws.RestartGamePayload{RoomID: created.RoomID})
	var reset ws.Snapshot
	if err := json.Unmarshal(waitFor(t, chB, ws.MsgGameUpdate), &reset); err != nil {
		t.Fatalf("decode reset: %v", err)
	}
	if reset.Board != ([9]string{}) || reset.CurrentTurn != game.X || reset.Status != ws.StatusPlaying {
		t.Fatalf("unexpected board after restart: %+v", reset)
	}

	// Bob drops; Alice is told
	connB.Close()
	waitFor(t, chA, ws.MsgPlayerLeft)
}
