package service

import (
	"sync"

	"github.com/labstack/gommon/random"
)

// Pubsub is the in-process notification sink. Topics are event types; every
// subscriber on a topic receives every event published to it.
type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan Event
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan Event)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan Event) (subId string, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan Event)
	}
	subId = random.String(16, random.Alphanumeric)
	ps.subs[topic][subId] = ch
	return subId, nil
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

func (ps *Pubsub) Publish(topic string, msg Event) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.subs[topic] == nil {
		return
	}

	for _, ch := range ps.subs[topic] {
		ch <- msg
	}
}
