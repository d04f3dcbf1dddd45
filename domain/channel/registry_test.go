package channel

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"channel-lab/errors"
)

func TestRegistry_Create_Then_Get(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given no channel exists
	req.Empty(registry.Names())

	// When alice founds a channel
	req.NoError(registry.Create("general", "alice"))

	// Then it is resolvable and she is its chief admin
	ch, ok := registry.Get("general")
	req.True(ok)
	req.Equal("alice", ch.ChiefAdmin())
	req.ElementsMatch([]string{"general"}, registry.Names())
}

func TestRegistry_Create_Duplicate_Is_Conflict(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.NoError(registry.Create("general", "alice"))
	err := registry.Create("general", "bob")

	req.ErrorIs(err, errors.ErrChannelAlreadyExists)
	// the original channel is untouched
	ch, _ := registry.Get("general")
	req.Equal("alice", ch.ChiefAdmin())
}

func TestRegistry_Delete_By_Chief(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.NoError(registry.Create("general", "alice"))
	req.NoError(registry.Delete("general", "alice"))

	_, ok := registry.Get("general")
	req.False(ok)
}

func TestRegistry_Delete_By_Non_Chief_Is_Forbidden(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.NoError(registry.Create("general", "alice"))
	ch, _ := registry.Get("general")
	req.True(ch.Subscribe("bob"))
	req.True(ch.PromoteAdmin("bob"))

	// even an admin cannot delete the channel
	req.ErrorIs(registry.Delete("general", "bob"), errors.ErrForbidden)
	_, ok := registry.Get("general")
	req.True(ok)
}

func TestRegistry_Delete_Unknown_Channel(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.ErrorIs(registry.Delete("nope", "alice"), errors.ErrChannelNotFound)
}

func TestRegistry_Concurrent_Creates_Are_Safe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.Create(fmt.Sprintf("channel-%d", i), "alice")
		}()
	}
	wg.Wait()

	req.Len(registry.Names(), 20)
}
