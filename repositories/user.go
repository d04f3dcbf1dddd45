//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	domainerr "channel-lab/errors"
	pb "channel-lab/proto/storage"
)

type IUserRepository interface {
	CreateUser(username, email, hashedPassword string) (string, error)
	GetUser(username string) (User, error)
	Exists(username string) (bool, error)
	UpdatePassword(username, hashedPassword string) error
	UpdateProfile(username string, profile Profile) error
	UpdateConfig(username string, config Config) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the domain-friendly representation of a user record in the
// repository layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	Profile      Profile
	Config       Config
}

// Profile carries optional self-description fields shown on the user page.
type Profile struct {
	FirstName string
	LastName  string
	Bio       string
	Gender    string
}

// Config carries per-user preferences. ChatFilter is only stored here; the
// message pipeline consuming it lives outside this service.
type Config struct {
	Blocked    []string
	ChatFilter bool
}

func userKey(username string) []byte {
	return []byte("user:" + username)
}

// CreateUser persists a new user record keyed by username. The password is
// expected to be hashed already; the repository never sees plain passwords.
// It returns the newly generated user ID.
func (u UserRepository) CreateUser(username, email, hashedPassword string) (string, error) {
	newID := uuid.New().String()
	userPb := &pb.User{
		Id:           newID,
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().Unix(),
		Roles:        []string{"user"},
	}

	data, err := proto.Marshal(userPb)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		if _, err = txn.Get(key); err == nil {
			return domainerr.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})

	return newID, err
}

// GetUser retrieves a user record from Badger and converts it to the
// repository.User struct.
func (u UserRepository) GetUser(username string) (User, error) {
	var userPb pb.User

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(username))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domainerr.ErrUserNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		})
	})

	if err != nil {
		return User{}, err
	}

	return toUserStruct(&userPb), nil
}

// Exists reports whether a username is registered, without decoding the
// stored record.
func (u UserRepository) Exists(username string) (bool, error) {
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(username))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (u UserRepository) UpdatePassword(username, hashedPassword string) error {
	return u.mutate(username, func(userPb *pb.User) {
		userPb.PasswordHash = hashedPassword
	})
}

func (u UserRepository) UpdateProfile(username string, profile Profile) error {
	return u.mutate(username, func(userPb *pb.User) {
		userPb.FirstName = profile.FirstName
		userPb.LastName = profile.LastName
		userPb.Bio = profile.Bio
		userPb.Gender = profile.Gender
	})
}

func (u UserRepository) UpdateConfig(username string, config Config) error {
	return u.mutate(username, func(userPb *pb.User) {
		userPb.Blocked = config.Blocked
		userPb.ChatFilter = config.ChatFilter
	})
}

// mutate applies a read-modify-write on a stored record inside a single
// transaction, so concurrent updates to the same user never interleave.
func (u UserRepository) mutate(username string, apply func(*pb.User)) error {
	return u.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(username))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domainerr.ErrUserNotFound
			}
			return err
		}

		var userPb pb.User
		if err := item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		}); err != nil {
			return err
		}

		apply(&userPb)

		data, err := proto.Marshal(&userPb)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(userKey(username), data)
	})
}

func toUserStruct(pbUser *pb.User) User {
	return User{
		ID:           pbUser.Id,
		Username:     pbUser.Username,
		Email:        pbUser.Email,
		PasswordHash: pbUser.PasswordHash,
		Roles:        pbUser.Roles,
		CreatedAt:    time.Unix(pbUser.CreatedAt, 0).UTC(),
		Profile: Profile{
			FirstName: pbUser.FirstName,
			LastName:  pbUser.LastName,
			Bio:       pbUser.Bio,
			Gender:    pbUser.Gender,
		},
		Config: Config{
			Blocked:    pbUser.Blocked,
			ChatFilter: pbUser.ChatFilter,
		},
	}
}
