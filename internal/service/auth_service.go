package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"gother/internal/config"
	"gother/internal/model/auth"
	"gother/internal/pkg/id"
	"gother/internal/pkg/jwt"
	"gother/internal/pkg/password"
	authRepo "gother/internal/repository/auth"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrSerialNotFound  = errors.New("ID not registered")
	ErrInvalidPassword = errors.New("invalid credentials")
	ErrUserBlocked     = errors.New("account blocked")
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
)

// AuthService owns registration, both login paths and token lifecycle.
type AuthService struct {
	userRepo         *authRepo.UserRepo
	refreshTokenRepo *authRepo.RefreshTokenRepo
	registry         *RegistryService
	jwt              *jwt.JWT
	refreshExpiry    time.Duration
	store            *config.StoreConfig
}

// NewAuthService creates the auth service
func NewAuthService(
	userRepo *authRepo.UserRepo,
	refreshTokenRepo *authRepo.RefreshTokenRepo,
	registry *RegistryService,
	authCfg *config.AuthConfig,
	storeCfg *config.StoreConfig,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		registry:         registry,
		jwt:              jwt.NewJWT(authCfg.JWTSecret, authCfg.AccessTokenExpiry),
		refreshExpiry:    authCfg.RefreshTokenExpiry,
		store:            storeCfg,
	}
}

// RegisterResult registration outcome
type RegisterResult struct {
	UserID   string
	Email    string
	SerialID int64
}

// Register creates an account, hashes both credentials and assigns a
// serial ID. The configured admin email gets the reserved master serial
// and the admin role instead of an allocated one.
func (s *AuthService) Register(ctx context.Context, email, pwd, displayName, phone string) (*RegisterResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, _ := s.userRepo.FindByEmail(ctx, email)
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := password.Hash(pwd)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return nil, errors.New("failed to hash password")
	}

	user := &auth.User{
		ID:             id.New(),
		Email:          email,
		Password:       hashed,
		LinkedPassword: hashed, // both paths open the same door until an admin re-links
		Role:           auth.RoleUser,
		Status:         auth.UserStatusActive,
		DisplayName:    displayName,
		PhoneNumber:    phone,
	}

	if email == strings.ToLower(s.store.AdminEmail) {
		user.Role = auth.RoleAdmin
		user.SerialID = s.store.MasterSerialID()
	} else {
		serial, err := s.registry.AllocateSerial(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to allocate serial id")
			return nil, errors.New("failed to allocate serial id")
		}
		user.SerialID = serial
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, errors.New("failed to create user")
	}

	log.Info().Str("user_id", user.ID).Int64("serial_id", user.SerialID).Msg("user registered")

	return &RegisterResult{
		UserID:   user.ID,
		Email:    user.Email,
		SerialID: user.SerialID,
	}, nil
}

// LoginResult login outcome
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	TokenType    string
	User         *auth.User
}

// Login authenticates by email or by serial ID. An all-digit identifier
// takes the serial path and is verified against the linked credential;
// anything else is treated as an email and verified against the primary
// password. A reserved master serial falls back to the configured admin
// email when no profile holds it yet.
func (s *AuthService) Login(ctx context.Context, identifier, pwd string) (*LoginResult, error) {
	identifier = strings.TrimSpace(identifier)

	var user *auth.User
	var err error

	if serial, numeric := parseSerial(identifier); numeric {
		user, err = s.userRepo.FindBySerialID(ctx, serial)
		if err != nil {
			if s.store.IsMasterSerial(serial) {
				user, err = s.userRepo.FindByEmail(ctx, strings.ToLower(s.store.AdminEmail))
			}
			if err != nil {
				return nil, ErrSerialNotFound
			}
		}
		if !password.Verify(user.LinkedPassword, pwd) {
			return nil, ErrInvalidPassword
		}
	} else {
		user, err = s.userRepo.FindByEmail(ctx, strings.ToLower(identifier))
		if err != nil {
			return nil, ErrUserNotFound
		}
		if !password.Verify(user.Password, pwd) {
			return nil, ErrInvalidPassword
		}
	}

	if user.Status == auth.UserStatusBlocked {
		// terminate every outstanding session, not just this attempt
		_ = s.refreshTokenRepo.DeleteByUserID(ctx, user.ID)
		return nil, ErrUserBlocked
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, user.SerialID, user.Role.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")
		return nil, errors.New("failed to generate token")
	}

	refreshToken, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLoginAt(ctx, user.ID); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login time")
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwt.GetExpiration().Seconds()),
		TokenType:    "Bearer",
		User:         user,
	}, nil
}

// parseSerial reports whether the identifier is an all-digit serial ID
func parseSerial(identifier string) (int64, bool) {
	if identifier == "" {
		return 0, false
	}
	serial, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil || serial <= 0 {
		return 0, false
	}
	return serial, true
}

// Refresh exchanges a refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	stored, err := s.refreshTokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if stored.IsExpired() {
		_ = s.refreshTokenRepo.Delete(ctx, refreshToken)
		return nil, ErrExpiredToken
	}

	user, err := s.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.Status == auth.UserStatusBlocked {
		_ = s.refreshTokenRepo.DeleteByUserID(ctx, user.ID)
		return nil, ErrUserBlocked
	}

	// rotate: the old token is spent
	_ = s.refreshTokenRepo.Delete(ctx, refreshToken)

	accessToken, err := s.jwt.GenerateToken(user.ID, user.SerialID, user.Role.String())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	newRefreshToken, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int(s.jwt.GetExpiration().Seconds()),
		TokenType:    "Bearer",
		User:         user,
	}, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshTokenRepo.Delete(ctx, refreshToken)
}

// ValidateToken verifies an access token and loads the live profile,
// so a block lands on the very next authenticated request.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*auth.User, error) {
	claims, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.Status == auth.UserStatusBlocked {
		_ = s.refreshTokenRepo.DeleteByUserID(ctx, user.ID)
		return nil, ErrUserBlocked
	}

	return user, nil
}

func (s *AuthService) issueRefreshToken(ctx context.Context, userID string) (string, error) {
	token := jwt.GenerateRefreshToken()

	rt := &auth.RefreshToken{
		ID:        id.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.refreshExpiry),
	}
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		log.Error().Err(err).Msg("failed to store refresh token")
		return "", errors.New("failed to store refresh token")
	}
	return token, nil
}
