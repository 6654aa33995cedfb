package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

// startHubServer runs a hub behind an httptest server that upgrades every request.
func startHubServer(t *testing.T) (*Hub, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(testLogger())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}

		client := NewClient(hub, conn)
		hub.Register(client)

		go client.WritePump(ctx)
		client.ReadPump(ctx)
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("reading event: %v", err)
	}

	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		t.Fatalf("decoding event: %v", err)
	}

	return evt
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_BroadcastEvent(t *testing.T) {
	hub, url := startHubServer(t)

	conn, _, err := websocket.Dial(context.Background(), url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow() //nolint:errcheck // test teardown

	waitForClients(t, hub, 1)

	hub.BroadcastEvent("reservation.created", json.RawMessage(`{"id":1}`))

	evt := readEvent(t, conn)
	if evt.Type != "reservation.created" || evt.ID != 1 {
		t.Errorf("event = %+v", evt)
	}

	if string(evt.Data) != `{"id":1}` {
		t.Errorf("data = %s", evt.Data)
	}
}

func TestHub_ReplayOnSubscribe(t *testing.T) {
	hub, url := startHubServer(t)

	hub.BroadcastEvent("reservation.created", json.RawMessage(`{"id":1}`))
	hub.BroadcastEvent("reservation.canceled", json.RawMessage(`{"id":1}`))

	conn, _, err := websocket.Dial(context.Background(), url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow() //nolint:errcheck // test teardown

	waitForClients(t, hub, 1)

	sub, _ := json.Marshal(SubscribeMsg{Type: "subscribe", LastEventID: 1})
	if err := conn.Write(context.Background(), websocket.MessageText, sub); err != nil {
		t.Fatalf("write subscribe: %v", err)
	}

	evt := readEvent(t, conn)
	if evt.ID != 2 || evt.Type != "reservation.canceled" {
		t.Errorf("replayed event = %+v, want id 2 reservation.canceled", evt)
	}
}

func TestHub_DropsOversizedPayload(t *testing.T) {
	hub := NewHub(testLogger())

	hub.Broadcast(make([]byte, maxBroadcastPayload+1))

	if len(hub.broadcast) != 0 {
		t.Errorf("oversized payload was queued")
	}
}
