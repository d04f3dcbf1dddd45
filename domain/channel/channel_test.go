package channel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock drives the lazy expiry deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestChannel(name, founder string) (*Channel, *fakeClock) {
	clock := newFakeClock()
	ch := NewChannel(name, founder)
	ch.now = clock.Now
	return ch, clock
}

func TestNewChannel_Founder_Is_Chief_And_Subscribed(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.Equal("general", ch.Name())
	req.Equal("alice", ch.ChiefAdmin())
	req.True(ch.IsChiefAdmin("alice"))
	req.True(ch.IsAdmin("alice"))
	req.True(ch.IsSubscribed("alice"))
	req.Empty(ch.admins)
}

func TestPromoteAdmin_Requires_Subscription(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	// bob has not subscribed yet
	req.False(ch.PromoteAdmin("bob"))

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))
	req.True(ch.IsAdmin("bob"))
}

func TestPromoteAdmin_On_Chief_Always_Fails(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.False(ch.PromoteAdmin("alice"))
	req.NotContains(ch.admins, "alice")
}

func TestPromoteAdmin_On_Banned_User_Fails(t *testing.T) {
	req := require.New(t)
	ch, _ := newTestChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.Block("bob", 10*time.Second))
	req.False(ch.PromoteAdmin("bob"))
}

func TestDemoteAdmin_On_Plain_Admin(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))

	req.True(ch.DemoteAdmin("bob"))
	req.False(ch.IsAdmin("bob"))
	// bob is still subscribed after losing admin rights
	req.True(ch.IsSubscribed("bob"))
}

func TestDemoteAdmin_On_Non_Admin_Fails(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.False(ch.DemoteAdmin("bob"))
}

func TestDemoteAdmin_On_Chief_Never_Faults(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	// The chief was never added to the admins set; removal must be a
	// guarded no-op success, not a fault.
	req.NotPanics(func() {
		req.True(ch.DemoteAdmin("alice"))
	})
	// Chief authority is untouched, only the (absent) set entry was cleared.
	req.True(ch.IsChiefAdmin("alice"))
	req.True(ch.IsAdmin("alice"))
}

func TestDemoteAdmin_On_Chief_After_Transfer_Back(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))
	req.True(ch.PromoteChiefAdmin("bob"))
	// alice is now an ordinary admin; transfer chief authority back so the
	// chief is also present in the admins set.
	req.True(ch.PromoteChiefAdmin("alice"))

	req.NotPanics(func() {
		req.True(ch.DemoteAdmin("alice"))
	})
	req.True(ch.IsChiefAdmin("alice"))
}

func TestPromoteChiefAdmin_Transfers_Authority(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))

	req.True(ch.PromoteChiefAdmin("bob"))

	req.True(ch.IsChiefAdmin("bob"))
	req.False(ch.IsChiefAdmin("alice"))
	// the outgoing chief keeps moderation rights as an ordinary admin
	req.True(ch.IsAdmin("alice"))
	req.Contains(ch.admins, "alice")
}

func TestPromoteChiefAdmin_Requires_Admin(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.False(ch.PromoteChiefAdmin("bob"))

	// transferring to the current chief is rejected too
	req.False(ch.PromoteChiefAdmin("alice"))
	req.Equal("alice", ch.ChiefAdmin())
}

func TestSubscribe_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.Subscribe("bob"))
	req.True(ch.IsSubscribed("bob"))
	req.Len(ch.Subscribers(), 2)
}

func TestSubscribe_Unsubscribe_Round_Trip(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.Unsubscribe("bob"))
	req.False(ch.IsSubscribed("bob"))
	req.True(ch.Subscribe("bob"))
	req.True(ch.IsSubscribed("bob"))
}

func TestUnsubscribe_Chief_Cannot_Leave(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.False(ch.Unsubscribe("alice"))
	req.True(ch.IsSubscribed("alice"))
}

func TestUnsubscribe_Admin_Loses_Both_Roles(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))

	req.True(ch.Unsubscribe("bob"))
	req.False(ch.IsAdmin("bob"))
	req.False(ch.IsSubscribed("bob"))
}

func TestUnsubscribe_Non_Member_Is_Silent_Success(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	req.True(ch.Unsubscribe("ghost"))
}

func TestBlock_Removes_Subscription(t *testing.T) {
	req := require.New(t)
	ch, _ := newTestChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.Block("bob", 10*time.Second))

	req.False(ch.IsSubscribed("bob"))
	req.True(ch.IsBlocked("bob"))
	req.False(ch.Subscribe("bob"))
}

func TestBlock_Privileged_Roles_Cannot_Be_Banned(t *testing.T) {
	req := require.New(t)
	ch, _ := newTestChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))

	req.False(ch.Block("bob", 10*time.Second))
	req.False(ch.Block("alice", 10*time.Second))
	req.True(ch.IsSubscribed("bob"))
}

func TestBlock_Negative_Duration_Is_Clamped(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.Block("bob", -5*time.Second))

	// expiry == now: still blocked at this instant, gone right after
	req.True(ch.IsBlocked("bob"))
	clock.Advance(time.Millisecond)
	req.False(ch.IsBlocked("bob"))
}

func TestBlock_Expiry_Lifts_Ban_Lazily(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	req.True(ch.Subscribe("bob"))
	req.True(ch.Block("bob", 10*time.Second))

	clock.Advance(5 * time.Second)
	req.True(ch.IsBlocked("bob"))

	clock.Advance(6 * time.Second)
	req.False(ch.IsBlocked("bob"))
	// the entry is physically gone after the purge, not just hidden
	req.NotContains(ch.banList, "bob")
	req.True(ch.Subscribe("bob"))
}

func TestBlock_Reblock_Overwrites_Expiry(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	req.True(ch.Block("bob", 30*time.Second))
	req.True(ch.Block("bob", 5*time.Second))

	clock.Advance(6 * time.Second)
	req.False(ch.IsBlocked("bob"))
}

// Regression for the degenerate soonest-expiry cache: after the first purge
// the cache must track the minimum over the surviving entries, otherwise a
// long ban outliving the first trigger would never be rescanned and would
// stale forever.
func TestPurge_Recomputes_Next_Expiry_Over_Survivors(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	req.True(ch.Block("bob", 10*time.Second))
	req.True(ch.Block("carol", 60*time.Second))
	req.True(ch.Block("dave", 30*time.Second))

	// first boundary: only bob expires, carol and dave survive
	clock.Advance(11 * time.Second)
	req.False(ch.IsBlocked("bob"))
	req.True(ch.IsBlocked("carol"))
	req.True(ch.IsBlocked("dave"))
	req.Equal(clock.Now().Add(19*time.Second), ch.nextExpiry)

	// second boundary: dave expires
	clock.Advance(20 * time.Second)
	req.False(ch.IsBlocked("dave"))
	req.True(ch.IsBlocked("carol"))

	// last boundary: the ban list empties and the cache resets
	clock.Advance(30 * time.Second)
	req.False(ch.IsBlocked("carol"))
	req.Empty(ch.banList)
	req.True(ch.nextExpiry.IsZero())
}

func TestPurgeStats_Count_Scans_And_Expired_Entries(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	scans, expired := ch.PurgeStats()
	req.Zero(scans)
	req.Zero(expired)

	req.True(ch.Block("bob", 10*time.Second))
	req.True(ch.Block("carol", 10*time.Second))
	req.True(ch.Block("dave", 60*time.Second))

	// before the boundary, membership checks never trigger a scan
	req.True(ch.IsBlocked("bob"))
	scans, expired = ch.PurgeStats()
	req.Zero(scans)
	req.Zero(expired)

	// one boundary crossing, one scan, two entries dropped
	clock.Advance(11 * time.Second)
	req.False(ch.IsBlocked("bob"))
	req.True(ch.IsBlocked("dave"))
	scans, expired = ch.PurgeStats()
	req.Equal(uint64(1), scans)
	req.Equal(uint64(2), expired)
}

func TestBannedUsers_Purges_Before_Reporting(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	req.True(ch.Block("bob", 10*time.Second))
	req.True(ch.Block("carol", 60*time.Second))

	clock.Advance(11 * time.Second)
	banned := ch.BannedUsers()

	req.Len(banned, 1)
	req.Equal("carol", banned[0].Username)
	req.Equal(clock.Now().Add(49*time.Second), banned[0].ExpiresAt)
}

// Full walk through the moderation scenario: founder, promotion gating,
// admin immunity, demotion, ban and lazy unban.
func TestChannel_Moderation_Scenario(t *testing.T) {
	req := require.New(t)
	ch, clock := newTestChannel("general", "alice")

	req.Equal("alice", ch.ChiefAdmin())
	req.ElementsMatch([]string{"alice"}, ch.Subscribers())

	// promoting bob before he subscribes fails
	req.False(ch.PromoteAdmin("bob"))

	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))
	req.Contains(ch.admins, "bob")

	// bob is an admin, banning him fails
	req.False(ch.Block("bob", 10*time.Second))

	req.True(ch.DemoteAdmin("bob"))
	req.True(ch.Block("bob", 10*time.Second))
	req.False(ch.IsSubscribed("bob"))
	req.Contains(ch.banList, "bob")

	clock.Advance(5 * time.Second)
	req.True(ch.IsBlocked("bob"))

	clock.Advance(6 * time.Second)
	req.False(ch.IsBlocked("bob"))
}

func TestChannel_Concurrent_Blocks_Are_All_Recorded(t *testing.T) {
	req := require.New(t)
	ch, _ := newTestChannel("general", "alice")

	users := []string{"bob", "carol", "dave", "erin", "frank"}
	var wg sync.WaitGroup
	for _, username := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch.Block(username, time.Minute)
		}()
	}
	wg.Wait()

	for _, username := range users {
		req.True(ch.IsBlocked(username))
	}
	req.Len(ch.BannedUsers(), len(users))
}

func TestChannel_Concurrent_Subscribe_Storm(t *testing.T) {
	req := require.New(t)
	ch := NewChannel("general", "alice")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch.Subscribe("bob")
			ch.Unsubscribe("bob")
			ch.Subscribe("bob")
		}()
	}
	wg.Wait()

	req.True(ch.IsSubscribed("bob"))
}
