package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")
	require.Equal(t, 2, b.SubscriberCount())

	b.Broadcast(Message{Type: "enemy_killed"})
	assert.Equal(t, "enemy_killed", (<-a).Type)
	assert.Equal(t, "enemy_killed", (<-c).Type)

	again := b.Register("a")
	_, open := <-a
	assert.False(t, open, "re-registering closes the old channel")

	b.Unregister("a")
	_, open = <-again
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	b.Close()
	assert.Zero(t, b.SubscriberCount())
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")
	for i := 0; i < 150; i++ {
		b.Broadcast(Message{Type: "tick"})
	}
	assert.Len(t, ch, cap(ch))
}

func TestHTTPRoutes(t *testing.T) {
	s := NewServer(":0")
	s.SetSnapshot(sim.Snapshot{Session: "abc", Level: 3, Score: 250})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	tests := []struct {
		path   string
		status int
		check  func(t *testing.T, body map[string]any)
	}{
		{"/health", http.StatusOK, func(t *testing.T, body map[string]any) {
			assert.Equal(t, "ok", body["status"])
		}},
		{"/snapshot", http.StatusOK, func(t *testing.T, body map[string]any) {
			assert.Equal(t, "abc", body["session"])
			assert.Equal(t, 3.0, body["level"])
			assert.Equal(t, 250.0, body["score"])
		}},
		{"/missing", http.StatusNotFound, nil},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.status, resp.StatusCode)
			if tc.check == nil {
				return
			}
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			tc.check(t, body)
		})
	}
}

func TestWebsocketReceivesEvents(t *testing.T) {
	s := NewServer(":0")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.Hub().SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	s.Publish("run-1", []ecs.Event{{Type: "level_completed", Data: map[string]int{"Number": 2}}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Session string         `json:"session"`
		Type    string         `json:"type"`
		Data    map[string]int `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "run-1", msg.Session)
	assert.Equal(t, "level_completed", msg.Type)
	assert.Equal(t, 2, msg.Data["Number"])

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return s.Hub().SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)
}
