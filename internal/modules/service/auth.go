package service

import (
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/cindral-studio/cindral-api/internal/pkg/utils"
	"go.uber.org/zap"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService trades the shared admin password for opaque bearer tokens.
// Tokens live in memory only: a restart logs every admin session out, which
// is acceptable for a single-admin CMS.
type AuthService interface {
	Login(password string) (string, error)
	Verify(token string) bool
	Logout(token string)
}

type authService struct {
	password string
	log      *zap.Logger

	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewAuthService(password string, log *zap.Logger) AuthService {
	return &authService{
		password: password,
		log:      log,
		tokens:   map[string]struct{}{},
	}
}

func (s *authService) Login(password string) (string, error) {
	// An unset password locks the admin surface entirely rather than
	// letting empty-string logins through.
	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidPassword
	}
	token, err := utils.GenerateKey("cms_")
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	s.log.Sugar().Infow("admin login", "activeTokens", s.activeCount())
	return token, nil
}

func (s *authService) Verify(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// Logout revokes the token. Unknown tokens are ignored so logout is
// idempotent.
func (s *authService) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

func (s *authService) activeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
