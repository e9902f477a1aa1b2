package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hanriver/traffic_hazard_system/internal/config"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the dataset's accounts were hashed with.
const bcryptCost = 10

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByLoginID(ctx context.Context, loginID string) (*models.User, error)
}

// AuthService defines the contract for registration and login.
type AuthService interface {
	Register(ctx context.Context, loginID, name, password, email string) (*models.User, error)
	Login(ctx context.Context, loginID, password string) (*models.User, string, error)
}

type authService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Register hashes the password and stores a new user. A duplicate login id
// surfaces as ErrLoginTaken.
func (s *authService) Register(ctx context.Context, loginID, name, password, email string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"login_id": loginID,
	})
	log.Info("Attempting to register a new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		LoginID:      loginID,
		Name:         name,
		PasswordHash: string(hash),
		Email:        email,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrLoginTaken) {
			log.Warn("Login id already registered")
			return nil, ErrLoginTaken
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login checks the credentials and issues a signed token bound to the user.
// Unknown login ids and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, loginID, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"login_id": loginID,
	})
	log.Info("Attempting to log in")

	user, err := s.repo.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("Login attempt for unknown login id")
			return nil, "", ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to look up user in repository")
		return nil, "", fmt.Errorf("service: could not look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return nil, "", fmt.Errorf("service: could not sign token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, token, nil
}

// issueToken signs an HS256 token whose subject is the user id. Report
// ownership is taken from this subject, never from the request body.
func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
