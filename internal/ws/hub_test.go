package ws

import (
	"encoding/json"
	"testing"
)

func TestHubSendToUser(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: 7, Send: make(chan []byte, 4)}
	hub.Register(c)

	hub.SendToUser(7, map[string]string{"type": "LIKE"})
	select {
	case data := <-c.Send:
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if m["type"] != "LIKE" {
			t.Errorf("type = %q, want LIKE", m["type"])
		}
	default:
		t.Fatal("expected a queued message")
	}
}

func TestHubSendToOtherUserIsDropped(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: 7, Send: make(chan []byte, 4)}
	hub.Register(c)

	hub.SendToUser(8, map[string]string{"type": "FOLLOW"})
	if len(c.Send) != 0 {
		t.Errorf("expected no messages for another user, got %d", len(c.Send))
	}
}

func TestHubConnectionCount(t *testing.T) {
	hub := NewHub()
	a := &Client{UserID: 1, Send: make(chan []byte, 1)}
	b := &Client{UserID: 1, Send: make(chan []byte, 1)}
	hub.Register(a)
	hub.Register(b)
	if got := hub.ConnectionCount(1); got != 2 {
		t.Fatalf("ConnectionCount = %d, want 2", got)
	}
	a.Close()
	if got := hub.ConnectionCount(1); got != 1 {
		t.Fatalf("ConnectionCount after close = %d, want 1", got)
	}
}

func TestClientCloseIsIdempotent(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: 2, Send: make(chan []byte, 1)}
	hub.Register(c)
	c.Close()
	c.Close() // second close must not panic
	hub.SendToUser(2, map[string]string{"type": "COMMENT"})
}

func TestSendAfterCloseDoesNotPanic(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: 3, Send: make(chan []byte)}
	hub.Register(c)
	c.Close()
	c.trySend([]byte(`{}`))
}
