package sse

import (
	"log/slog"
	"sync"
)

// Subscription forwards hub events to an in-process callback on its own goroutine
type Subscription struct {
	hub    *Hub
	client *Client
	wg     sync.WaitGroup
	once   sync.Once
}

// Subscribe registers fn for the given event types (all types when empty).
// fn runs sequentially on a single goroutine until Close or hub shutdown.
func Subscribe(hub *Hub, eventTypes []string, fn func(Event)) *Subscription {
	s := &Subscription{hub: hub, client: hub.Register(eventTypes)}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for event := range s.client.EventChannel {
			fn(event)
		}
		slog.Debug(LogMsgSubscriptionClosed, "client_id", s.client.ID)
	}()
	return s
}

// ID returns the underlying hub client id
func (s *Subscription) ID() string {
	return s.client.ID
}

// Close unregisters the subscription and waits for the callback goroutine
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.Unregister(s.client.ID)
	})
	s.wg.Wait()
}
