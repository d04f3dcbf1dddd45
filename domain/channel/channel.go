// Package channel contains the membership and moderation state machine of the
// chat service. A Channel owns its own state and never reaches into another
// channel, which keeps locking per-instance and trivially deadlock-free.
package channel

import (
	"sync"
	"time"
)

type Set map[string]struct{}

// BannedUser is the read-model entry returned by BannedUsers.
type BannedUser struct {
	Username  string
	ExpiresAt time.Time
}

// Channel holds the membership, role and ban state for one named channel.
//
// Role hierarchy: chief admin > admin > subscriber > non-member > banned.
// The chief admin is never stored in the admins set; their admin rights are
// implicit. A username is never simultaneously subscribed and banned.
//
// Bans expire lazily: nextExpiry caches the soonest pending unblock time so
// that membership checks stay O(1) until an expiry boundary is actually
// crossed, at which point a single O(n) purge of the ban list runs.
type Channel struct {
	mu          sync.Mutex
	name        string
	chiefAdmin  string
	admins      Set
	subscribers Set
	banList     map[string]time.Time // username -> unblock time
	nextExpiry  time.Time            // zero value = no pending expiry

	purgeScans  uint64 // full scans of the ban list
	bansExpired uint64 // entries dropped by those scans

	// now is swapped in tests to drive expiry deterministically.
	now func() time.Time
}

// NewChannel creates a channel whose founder becomes the chief admin and its
// first subscriber.
func NewChannel(name, founder string) *Channel {
	return &Channel{
		name:        name,
		chiefAdmin:  founder,
		admins:      make(Set),
		subscribers: Set{founder: {}},
		banList:     make(map[string]time.Time),
		now:         time.Now,
	}
}

func (c *Channel) Name() string {
	return c.name
}

func (c *Channel) ChiefAdmin() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chiefAdmin
}

func (c *Channel) IsChiefAdmin(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return username == c.chiefAdmin
}

// IsAdmin reports whether username holds admin rights, which includes the
// chief admin even though the chief is not stored in the admins set.
func (c *Channel) IsAdmin(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isAdminLocked(username)
}

func (c *Channel) isAdminLocked(username string) bool {
	if username == c.chiefAdmin {
		return true
	}
	_, ok := c.admins[username]
	return ok
}

func (c *Channel) IsSubscribed(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.subscribers[username]
	return ok
}

// PromoteAdmin grants moderation rights to a current subscriber.
// It fails for non-subscribers, banned users and the chief admin
// (chief authority already subsumes admin authority).
func (c *Channel) PromoteAdmin(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, subscribed := c.subscribers[username]; !subscribed {
		return false
	}
	if c.isBlockedLocked(username) {
		return false
	}
	if username == c.chiefAdmin {
		return false
	}
	c.admins[username] = struct{}{}
	return true
}

// DemoteAdmin revokes moderation rights. Demoting the chief admin is a no-op
// success: the chief only appears in the admins set after a chief transfer,
// so the entry may legitimately be absent and removal must not fault.
func (c *Channel) DemoteAdmin(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if username == c.chiefAdmin {
		delete(c.admins, username)
		return true
	}
	if _, ok := c.admins[username]; !ok {
		return false
	}
	delete(c.admins, username)
	return true
}

// PromoteChiefAdmin transfers chief authority to an existing admin. The
// outgoing chief is demoted to an ordinary admin. Transferring to the current
// chief fails, otherwise the chief would end up inside the admins set.
func (c *Channel) PromoteChiefAdmin(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if username == c.chiefAdmin {
		return false
	}
	if _, ok := c.admins[username]; !ok {
		return false
	}
	c.admins[c.chiefAdmin] = struct{}{}
	c.chiefAdmin = username
	return true
}

// Subscribe adds username to the channel members. Re-subscribing an existing
// member is a no-op success. Banned users cannot subscribe until their ban
// expires.
func (c *Channel) Subscribe(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isBlockedLocked(username) {
		return false
	}
	c.subscribers[username] = struct{}{}
	return true
}

// Unsubscribe removes username from the channel, dropping admin rights along
// the way. The chief admin can never leave; chief authority must be
// transferred first. Unsubscribing a non-member is a silent no-op success.
func (c *Channel) Unsubscribe(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if username == c.chiefAdmin {
		return false
	}
	delete(c.admins, username)
	delete(c.subscribers, username)
	return true
}

// Block bans username for the given duration, removing any subscription.
// Privileged roles (admins and the chief) cannot be banned. Re-blocking an
// already banned user overwrites the previous expiry.
func (c *Channel) Block(username string, duration time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isAdminLocked(username) {
		return false
	}
	if duration < 0 {
		duration = 0
	}
	delete(c.subscribers, username)

	expiry := c.now().Add(duration)
	c.banList[username] = expiry
	if c.nextExpiry.IsZero() || expiry.Before(c.nextExpiry) {
		c.nextExpiry = expiry
	}
	return true
}

// IsBlocked reports whether username is currently banned, purging any
// expired entries first.
func (c *Channel) IsBlocked(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isBlockedLocked(username)
}

func (c *Channel) isBlockedLocked(username string) bool {
	c.purgeExpiredLocked()
	_, ok := c.banList[username]
	return ok
}

// purgeExpiredLocked drops every ban whose expiry has passed and recomputes
// nextExpiry as the minimum over the surviving entries. The scan is skipped
// entirely while the current time has not crossed the cached soonest expiry,
// so it runs at most once per expiry boundary.
func (c *Channel) purgeExpiredLocked() {
	if c.nextExpiry.IsZero() {
		return
	}
	now := c.now()
	if !now.After(c.nextExpiry) {
		return
	}

	c.purgeScans++
	c.nextExpiry = time.Time{}
	for username, expiry := range c.banList {
		if !expiry.After(now) {
			delete(c.banList, username)
			c.bansExpired++
			continue
		}
		if c.nextExpiry.IsZero() || expiry.Before(c.nextExpiry) {
			c.nextExpiry = expiry
		}
	}
}

// PurgeStats returns how many full ban-list scans ran and how many expired
// entries they dropped since the channel was created.
func (c *Channel) PurgeStats() (scans, expired uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeScans, c.bansExpired
}

// Subscribers returns a snapshot of the current member names, in no
// particular order.
func (c *Channel) Subscribers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.subscribers))
	for username := range c.subscribers {
		names = append(names, username)
	}
	return names
}

// BannedUsers returns a snapshot of the active bans after purging expired
// entries.
func (c *Channel) BannedUsers() []BannedUser {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeExpiredLocked()
	banned := make([]BannedUser, 0, len(c.banList))
	for username, expiry := range c.banList {
		banned = append(banned, BannedUser{Username: username, ExpiresAt: expiry})
	}
	return banned
}
