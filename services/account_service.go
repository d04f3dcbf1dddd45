package services

import (
	"channel-lab/repositories"
)

type IAccountService interface {
	GetProfile(username string) (repositories.Profile, error)
	UpdateProfile(username string, profile repositories.Profile) error
	GetConfig(username string) (repositories.Config, error)
	UpdateConfig(username string, config repositories.Config) error
}

// AccountService exposes the self-service parts of a user record, the
// profile page and the chat preferences.
type AccountService struct {
	userRepository repositories.IUserRepository
}

func NewAccountService(repo repositories.IUserRepository) IAccountService {
	return &AccountService{userRepository: repo}
}

func (s *AccountService) GetProfile(username string) (repositories.Profile, error) {
	user, err := s.userRepository.GetUser(username)
	if err != nil {
		return repositories.Profile{}, err
	}
	return user.Profile, nil
}

func (s *AccountService) UpdateProfile(username string, profile repositories.Profile) error {
	return s.userRepository.UpdateProfile(username, profile)
}

func (s *AccountService) GetConfig(username string) (repositories.Config, error) {
	user, err := s.userRepository.GetUser(username)
	if err != nil {
		return repositories.Config{}, err
	}
	return user.Config, nil
}

func (s *AccountService) UpdateConfig(username string, config repositories.Config) error {
	return s.userRepository.UpdateConfig(username, config)
}
