package services

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"
	"gocafe/repositories"
	"gocafe/requests"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials ServiceError = "invalid username or password"
	ErrUsernameTaken      ServiceError = "that username is already taken"
	ErrHashingFailed      ServiceError = "password could not be processed"
	ErrRegistrationFailed ServiceError = "registration failed"
	ErrUserNotFound       ServiceError = "user not found"
)

// dummyHash keeps the unknown-username path doing the same bcrypt work as
// the wrong-password path, so callers cannot tell the two apart.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type IAuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req requests.SignupRequest) (*models.User, error)
}

type AuthService struct {
	repo repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return NewAuthServiceWithDB(databaseconfig.GetDB())
}

func NewAuthServiceWithDB(db *gorm.DB) IAuthService {
	return &AuthService{repo: repositories.NewUserRepositoryWithDB(db)}
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *AuthService) comparePasswords(hashedPassword, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// Authenticate returns the user when the username exists and the password
// matches its digest. Both failure modes collapse into
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			_ = s.comparePasswords(dummyHash, password)
			logconfig.Log.Warn("Login attempt for unknown username",
				zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		logconfig.Log.Error("User lookup failed during login",
			zap.String("username", username),
			zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	if err := s.comparePasswords(user.HashedPassword, password); err != nil {
		logconfig.Log.Warn("Invalid password",
			zap.String("username", username),
			zap.Uint("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	logconfig.Log.Info("Authentication succeeded",
		zap.String("username", username),
		zap.Uint("user_id", user.ID))
	return user, nil
}

// Register stores a new user with a bcrypt digest in place of the
// plaintext password; the plaintext never leaves this call.
func (s *AuthService) Register(ctx context.Context, req requests.SignupRequest) (*models.User, error) {
	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		logconfig.Log.Error("Password hashing failed",
			zap.String("username", req.Username),
			zap.Error(err))
		return nil, ErrHashingFailed
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		HashedPassword: hashedPassword,
	}
	user.ApplyDefaults()

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			logconfig.Log.Warn("Signup with taken username",
				zap.String("username", req.Username))
			return nil, ErrUsernameTaken
		}
		return nil, ErrRegistrationFailed
	}

	logconfig.Log.Info("User registered",
		zap.String("username", user.Username),
		zap.Uint("user_id", user.ID))
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
