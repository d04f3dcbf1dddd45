package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	domainerr "channel-lab/errors"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	id, err := repo.CreateUser("alice", "alice@example.com", "$argon2id$fake")
	req.NoError(err)
	req.NotEmpty(id)

	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("alice", user.Username)
	req.Equal("alice@example.com", user.Email)
	req.Equal("$argon2id$fake", user.PasswordHash)
	req.Equal([]string{"user"}, user.Roles)
	req.False(user.CreatedAt.IsZero())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.CreateUser("alice", "alice@example.com", "hash")
	req.NoError(err)

	_, err = repo.CreateUser("alice", "other@example.com", "hash2")
	req.ErrorIs(err, domainerr.ErrUserAlreadyExists)

	// the original record is untouched
	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal("alice@example.com", user.Email)
}

func TestUserRepository_Get_Unknown_User(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.GetUser("ghost")
	req.ErrorIs(err, domainerr.ErrUserNotFound)
}

func TestUserRepository_Exists(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	ok, err := repo.Exists("alice")
	req.NoError(err)
	req.False(ok)

	_, err = repo.CreateUser("alice", "alice@example.com", "hash")
	req.NoError(err)

	ok, err = repo.Exists("alice")
	req.NoError(err)
	req.True(ok)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.CreateUser("alice", "alice@example.com", "old-hash")
	req.NoError(err)

	req.NoError(repo.UpdatePassword("alice", "new-hash"))

	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal("new-hash", user.PasswordHash)

	req.ErrorIs(repo.UpdatePassword("ghost", "x"), domainerr.ErrUserNotFound)
}

func TestUserRepository_UpdateProfile_And_Config(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.CreateUser("alice", "alice@example.com", "hash")
	req.NoError(err)

	profile := Profile{FirstName: "Alice", LastName: "Liddell", Bio: "Down the rabbit hole", Gender: "f"}
	req.NoError(repo.UpdateProfile("alice", profile))

	config := Config{Blocked: []string{"troll42"}, ChatFilter: true}
	req.NoError(repo.UpdateConfig("alice", config))

	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal(profile, user.Profile)
	req.Equal(config, user.Config)
	// profile update did not clobber identity fields
	req.Equal("alice@example.com", user.Email)
}
