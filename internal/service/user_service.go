package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/config"
	"gother/internal/model/auth"
	authRepo "gother/internal/repository/auth"
)

var ErrUnknownPermission = errors.New("unknown permission tag")

// UserService owns roster browsing, status changes and staff management.
type UserService struct {
	userRepo         *authRepo.UserRepo
	refreshTokenRepo *authRepo.RefreshTokenRepo
	store            *config.StoreConfig
}

// NewUserService creates the user service
func NewUserService(
	userRepo *authRepo.UserRepo,
	refreshTokenRepo *authRepo.RefreshTokenRepo,
	storeCfg *config.StoreConfig,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		store:            storeCfg,
	}
}

// GetByID loads a profile
func (s *UserService) GetByID(ctx context.Context, userID string) (*auth.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns a page of the roster
func (s *UserService) List(ctx context.Context, page, pageSize int64) ([]*auth.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.userRepo.List(ctx, bson.M{}, page, pageSize)
}

// UpdateProfile changes the caller's own display fields
func (s *UserService) UpdateProfile(ctx context.Context, userID, displayName, phone string) error {
	set := bson.M{}
	if displayName != "" {
		set["display_name"] = displayName
	}
	if phone != "" {
		set["phone_number"] = phone
	}
	if len(set) == 0 {
		return nil
	}
	return s.userRepo.Update(ctx, userID, bson.M{"$set": set})
}

// SetStatus moves an account to a new lifecycle state. Blocking also
// revokes every outstanding session. The master account is untouchable.
func (s *UserService) SetStatus(ctx context.Context, userID string, status auth.UserStatus) error {
	if !status.IsValid() {
		return errors.New("invalid status")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if s.isMaster(user) {
		return ErrMasterAccount
	}

	if err := s.userRepo.Update(ctx, userID, bson.M{"$set": bson.M{"status": status}}); err != nil {
		return err
	}

	if status == auth.UserStatusBlocked {
		_ = s.refreshTokenRepo.DeleteByUserID(ctx, userID)
	}

	log.Info().Str("user_id", userID).Str("status", status.String()).Msg("user status changed")
	return nil
}

// Delete removes a profile permanently. The master account is untouchable.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if s.isMaster(user) {
		return ErrMasterAccount
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	_ = s.refreshTokenRepo.DeleteByUserID(ctx, userID)

	log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

// FindStaffCandidate resolves a staff-search identifier, either an email
// or a serial ID.
func (s *UserService) FindStaffCandidate(ctx context.Context, identifier string) (*auth.User, error) {
	identifier = strings.TrimSpace(identifier)

	if serial, numeric := parseSerial(identifier); numeric {
		user, err := s.userRepo.FindBySerialID(ctx, serial)
		if err != nil {
			return nil, ErrSerialNotFound
		}
		return user, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(identifier))
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetPermissions grants a profile the moderator role with exactly the
// given permission tags. Unknown tags reject the whole request. An empty
// set demotes back to a plain user.
func (s *UserService) SetPermissions(ctx context.Context, userID string, tags []string) (*auth.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if s.isMaster(user) {
		return nil, ErrMasterAccount
	}

	perms, ok := auth.ParsePermissions(tags)
	if !ok {
		return nil, ErrUnknownPermission
	}

	role := auth.RoleModerator
	if len(perms) == 0 {
		role = auth.RoleUser
	}

	update := bson.M{"$set": bson.M{
		"role":        role,
		"permissions": perms,
	}}
	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", userID).
		Str("role", role.String()).
		Int("permissions", len(perms)).
		Msg("staff permissions updated")

	user.Role = role
	user.Permissions = perms
	return user, nil
}

func (s *UserService) isMaster(u *auth.User) bool {
	return s.store.IsMasterSerial(u.SerialID) ||
		strings.EqualFold(u.Email, s.store.AdminEmail)
}
