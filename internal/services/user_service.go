package services

import (
	"strings"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOrCreate returns the account for username, creating it the first time
// the name is seen.
func (s *UserService) GetOrCreate(username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		verr := &ValidationError{}
		verr.Add("username", "is required")
		return nil, verr
	}
	return s.userRepo.FirstOrCreate(username)
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type UserOverview struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	BeanCount int64  `json:"bean_count"`
}

// ListUsers returns every account with the number of beans it owns.
func (s *UserService) ListUsers() ([]UserOverview, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.userRepo.BeanCounts()
	if err != nil {
		return nil, err
	}
	out := make([]UserOverview, len(users))
	for i, u := range users {
		out[i] = UserOverview{ID: u.ID, Username: u.Username, BeanCount: counts[u.ID]}
	}
	return out, nil
}
