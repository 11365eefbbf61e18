package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestHub_FiltersByType(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	gardenOnly := hub.Register([]string{"garden.updated"})
	assert.Equal(t, 2, hub.ClientCount())

	hub.Broadcast("player.updated", map[string]int{"coins": 1})
	hub.Broadcast("garden.updated", nil)

	assert.Equal(t, "player.updated", receive(t, all).Type)
	assert.Equal(t, "garden.updated", receive(t, all).Type)
	assert.Equal(t, "garden.updated", receive(t, gardenOnly).Type)

	select {
	case e := <-gardenOnly.EventChannel:
		t.Fatalf("unexpected event %s", e.Type)
	default:
	}
}

func TestHub_DropsEventsBeforeStart(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("garden.updated", "stale")

	hub.Start()
	defer hub.Stop()
	c := hub.Register(nil)

	hub.Broadcast("garden.updated", "current")
	e := receive(t, c)
	assert.Equal(t, "current", e.Payload)

	select {
	case extra := <-c.EventChannel:
		t.Fatalf("unexpected event %v", extra.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Register(nil)
	fast := Subscribe(hub, nil, func(Event) {})
	defer fast.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < ClientEventBuffer*4; i++ {
			hub.Broadcast("tick", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}

	// buffer eventually fills and stays bounded
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, len(slow.EventChannel), ClientEventBuffer)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	hub.Unregister(c.ID)
	hub.Unregister(c.ID)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())
}

func TestHub_StopClosesClientsAndLeaksNothing(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)

	var mu sync.Mutex
	var got []string
	sub := Subscribe(hub, []string{"a"}, func(e Event) {
		mu.Lock()
		got = append(got, e.Type)
		mu.Unlock()
	})

	hub.Broadcast("a", nil)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)

	hub.Stop()
	sub.Close()
	hub.Stop()

	buffered, ok := <-c.EventChannel
	require.True(t, ok, "events delivered before stop stay readable")
	assert.Equal(t, "a", buffered.Type)
	_, ok = <-c.EventChannel
	assert.False(t, ok)

	late := hub.Register(nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "register after stop yields a closed channel")

	checker.Check(0)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "garden.updated", Timestamp: 5, Payload: map[string]int{"n": 2}})
	require.NoError(t, err)
	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: garden.updated\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
	assert.Contains(t, s, `"payload":{"n":2}`)
}

func TestHandler_StreamsSnapshotAndEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	snapshot := func(types []string) []Event {
		return []Event{{ID: "s", Type: "player.updated", Payload: map[string]int{"coins": 100}}}
	}
	srv := httptest.NewServer(Handler(hub, snapshot))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=player.updated", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast("player.updated", map[string]int{"coins": 90})

	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 1024)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && strings.Count(string(buf), "event: ") < 3 {
		n, err := resp.Body.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	body := string(buf)
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, `"coins":100`)
	assert.Contains(t, body, `"coins":90`)
}
