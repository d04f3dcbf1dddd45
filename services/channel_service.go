package services

import (
	"time"

	"channel-lab/domain/channel"
	"channel-lab/errors"
	"channel-lab/observability"
	"channel-lab/repositories"
)

type IChannelService interface {
	CreateChannel(name, founder string) error
	DeleteChannel(name, requester string) error
	ChannelNames() []string
	Subscribe(name, username string) error
	Unsubscribe(name, username string) error
	ListSubscribers(name string) ([]string, error)
	PromoteAdmin(name, requester, target string) error
	DemoteAdmin(name, requester, target string) error
	TransferChiefAdmin(name, requester, target string) error
	BlockUser(name, requester, target string, duration time.Duration) error
	ListBannedUsers(name string) ([]channel.BannedUser, error)
}

// ChannelService enforces who may perform each moderation action before
// delegating the membership transition itself to the domain layer.
type ChannelService struct {
	registry       *channel.Registry
	userRepository repositories.IUserRepository
	monitoring     *observability.MonitoringManager
}

func NewChannelService(registry *channel.Registry,
	repo repositories.IUserRepository,
	monitoring *observability.MonitoringManager) IChannelService {
	return &ChannelService{
		registry:       registry,
		userRepository: repo,
		monitoring:     monitoring,
	}
}

func (s *ChannelService) CreateChannel(name, founder string) error {
	if err := s.registry.Create(name, founder); err != nil {
		return err
	}

	s.monitoring.IncrChannelsCreated()
	s.monitoring.UpdateChannelCount(len(s.registry.Names()))
	return nil
}

func (s *ChannelService) DeleteChannel(name, requester string) error {
	// The registry itself verifies chief authority before removal.
	if err := s.registry.Delete(name, requester); err != nil {
		return err
	}

	s.monitoring.IncrChannelsDeleted()
	s.monitoring.UpdateChannelCount(len(s.registry.Names()))
	return nil
}

func (s *ChannelService) ChannelNames() []string {
	return s.registry.Names()
}

func (s *ChannelService) Subscribe(name, username string) error {
	ch, ok := s.registry.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}

	if !ch.Subscribe(username) {
		// The only way Subscribe refuses is an active ban.
		return errors.ErrForbidden
	}

	s.monitoring.IncrSubscriptions()
	return nil
}

func (s *ChannelService) Unsubscribe(name, username string) error {
	ch, ok := s.registry.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}

	if !ch.Unsubscribe(username) {
		// The chief admin must transfer the role before leaving.
		return errors.ErrInvalidState
	}

	s.monitoring.IncrUnsubscriptions()
	return nil
}

func (s *ChannelService) ListSubscribers(name string) ([]string, error) {
	ch, ok := s.registry.Get(name)
	if !ok {
		return nil, errors.ErrChannelNotFound
	}
	return ch.Subscribers(), nil
}

func (s *ChannelService) PromoteAdmin(name, requester, target string) error {
	ch, ok := s.registry.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}

	if !ch.IsAdmin(requester) {
		return errors.ErrForbidden
	}

	if !ch.PromoteAdmin(target) {
		return errors.ErrInvalidState
	}
	return nil
}

func (s *ChannelService) DemoteAdmin(name, requester, target string) error {
	ch, ok := s.registry.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}

	if !ch.IsAdmin(requester) {
		return errors.ErrForbidden
	}

	if !ch.DemoteAdmin(target) {
		return errors.ErrInvalidState
	}
	return nil
}

func (s *ChannelService) TransferChiefAdmin(name, requester, target string) error {
	ch, ok := s.registry.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}

	// Only the current chief can hand over chief authority.
	if !ch.IsChiefAdmin(requester) {
		return errors.ErrForbidden
	}

	if !ch.PromoteChiefAdmin(target) {
		return errors.ErrInvalidState
	}
	return nil
}

func (s *ChannelService) BlockUser(name, requester, target string, duration time.Duration) error {
	ch, ok := s.registry.Get(name)
	if !ok {
		return errors.ErrChannelNotFound
	}

	if !ch.IsAdmin(requester) {
		return errors.ErrForbidden
	}

	// A ban outlives channel membership, so the target does not need to
	// be subscribed, but it must at least be a known account.
	known, err := s.userRepository.Exists(target)
	if err != nil {
		return err
	}
	if !known {
		return errors.ErrUserNotFound
	}

	if !ch.Block(target, duration) {
		// Admins and the chief are shielded from bans.
		return errors.ErrInvalidState
	}

	s.monitoring.IncrBansIssued()
	return nil
}

func (s *ChannelService) ListBannedUsers(name string) ([]channel.BannedUser, error) {
	ch, ok := s.registry.Get(name)
	if !ok {
		return nil, errors.ErrChannelNotFound
	}
	return ch.BannedUsers(), nil
}
