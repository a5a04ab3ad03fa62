package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"tictactoe_arena/internal/game"
	"tictactoe_arena/internal/ws"
)

// Smoke client: opens two connections against a running server, plays
// a full match through the public protocol and prints every frame.
//
//	go run ./cmd/ws_smoke -url http://localhost:8080

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "server base URL")
	flag.Parse()

	tokenA := guestToken(*serverURL, "SmokeAlice")
	tokenB := guestToken(*serverURL, "SmokeBob")

	wsBase := strings.Replace(*serverURL, "http", "ws", 1) + "/ws?token="

	connA := dial(wsBase + tokenA)
	defer connA.Close()
	connB := dial(wsBase + tokenB)
	defer connB.Close()

	chA := reader("A", connA)
	chB := reader("B", connB)

	send(connA, ws.MsgCreateGame, ws.CreateGamePayload{DisplayName: "SmokeAlice"})
	var created ws.GameCreatedPayload
	mustDecode(waitFor(chA, ws.MsgGameCreated), &created)
	log.Printf("room created: %s (share %s)", created.RoomID, created.ShareURL)

	send(connB, ws.MsgJoinGame, ws.JoinGamePayload{RoomID: created.RoomID, DisplayName: "SmokeBob"})
	waitFor(chA, ws.MsgGameStart)
	waitFor(chB, ws.MsgGameJoined)

	plays := []struct {
		conn *websocket.Conn
		cell int
		s    game.Symbol
	}{
		{connA, 0, game.X},
		{connB, 4, game.O},
		{connA, 1, game.X},
		{connB, 8, game.O},
		{connA, 2, game.X}, // top row
	}

	var snap ws.Snapshot
	for _, p := range plays {
		send(p.conn, ws.MsgMakeMove, ws.MakeMovePayload{RoomID: created.RoomID, Cell: p.cell, Symbol: p.s})
		mustDecode(waitFor(chA, ws.MsgGameUpdate), &snap)
		waitFor(chB, ws.MsgGameUpdate)
	}

	if snap.Status != ws.StatusFinished || snap.Winner != game.X {
		log.Fatalf("smoke failed: expected X win, got %+v", snap)
	}

	log.Printf("smoke OK: %s wins after %d frames", snap.Winner, len(plays))
}

func guestToken(serverURL, name string) string {
	body, _ := json.Marshal(map[string]string{"display_name": name})
	res, err := http.Post(serverURL+"/api/v1/auth/guest", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("guest auth: %v", err)
	}
	defer res.Body.Close()
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		log.Fatalf("decode guest auth: %v", err)
	}
	return out.Token
}

func dial(url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", url, err)
	}
	return conn
}

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func reader(tag string, conn *websocket.Conn) chan frame {
	out := make(chan frame, 32)
	go func() {
		defer close(out)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			log.Printf("[%s] %s", tag, msg)
			var f frame
			if err := json.Unmarshal(msg, &f); err != nil {
				continue
			}
			out <- f
		}
	}()
	return out
}

func waitFor(ch chan frame, msgType string) json.RawMessage {
	deadline := time.After(5 * time.Second)
	for {
		select {
		case f, ok := <-ch:
			if !ok {
				log.Fatalf("connection closed waiting for %s", msgType)
			}
			if f.Type == ws.MsgError {
				log.Fatalf("server error waiting for %s: %s", msgType, f.Payload)
			}
			if f.Type == msgType {
				return f.Payload
			}
		case <-deadline:
			log.Fatalf("timeout waiting for %s", msgType)
		}
	}
}

func send(conn *websocket.Conn, msgType string, payload any) {
	data, _ := json.Marshal(ws.Message{Type: msgType, Payload: payload})
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Fatalf("write %s: %v", msgType, err)
	}
}

func mustDecode(raw json.RawMessage, out any) {
	if err := json.Unmarshal(raw, out); err != nil {
		log.Fatalf("decode: %v", err)
	}
}
