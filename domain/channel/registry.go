package channel

import (
	"sync"

	"channel-lab/errors"
)

// Registry owns the name -> Channel mapping. Its lock guards only the map
// itself and is never held while a channel operation runs, so the registry
// lock and the per-channel locks can never form a circular wait.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]*Channel
}

func NewRegistry() *Registry {
	return &Registry{channels: make(map[string]*Channel)}
}

// Create inserts a new channel whose founder becomes chief admin and first
// subscriber. Creating an already existing channel is a conflict.
func (r *Registry) Create(name, founder string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.channels[name]; ok {
		return errors.ErrChannelAlreadyExists
	}
	r.channels[name] = NewChannel(name, founder)
	return nil
}

// Delete removes a channel irrevocably. Only the channel's chief admin may
// delete it. The chief check runs outside the registry lock; before the
// actual removal the entry is re-checked so a concurrent delete-and-recreate
// cannot take down somebody else's channel.
func (r *Registry) Delete(name, requester string) error {
	ch, ok := r.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}
	if !ch.IsChiefAdmin(requester) {
		return errors.ErrForbidden
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.channels[name] != ch {
		return errors.ErrChannelNotFound
	}
	delete(r.channels, name)
	return nil
}

// Get looks up a channel by name.
func (r *Registry) Get(name string) (*Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[name]
	return ch, ok
}

// PurgeStats aggregates the purge counters of every live channel. The
// registry lock is released before the per-channel locks are taken.
func (r *Registry) PurgeStats() (scans, expired uint64) {
	r.mu.RLock()
	snapshot := make([]*Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		snapshot = append(snapshot, ch)
	}
	r.mu.RUnlock()

	for _, ch := range snapshot {
		s, e := ch.PurgeStats()
		scans += s
		expired += e
	}
	return scans, expired
}

// Names returns a snapshot of the existing channel names, in no particular
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	return names
}
