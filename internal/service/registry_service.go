package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gother/internal/config"
	"gother/internal/model/auth"
	"gother/internal/pkg/password"
	authRepo "gother/internal/repository/auth"
)

var (
	ErrSerialTaken    = errors.New("serial id already assigned")
	ErrSerialReserved = errors.New("serial id is reserved")
	ErrMasterAccount  = errors.New("operation not allowed on the master account")
)

// serialAllocateRetries bounds the duplicate-key retry loop. Each retry
// re-increments the counter, so collisions only happen against serials
// assigned manually outside the allocator.
const serialAllocateRetries = 5

// randomSerialSpan is the range of the randomized fallback, matching the
// manual reassignment the admin shell performed when the counter was
// unavailable: base + rand(1..span).
const randomSerialSpan = 9000

// RegistryService owns the serial-ID number space: allocation,
// reassignment, credential re-linking and the roster-wide repair and
// purge operations.
type RegistryService struct {
	userRepo         *authRepo.UserRepo
	refreshTokenRepo *authRepo.RefreshTokenRepo
	store            *config.StoreConfig
}

// NewRegistryService creates the registry service
func NewRegistryService(
	userRepo *authRepo.UserRepo,
	refreshTokenRepo *authRepo.RefreshTokenRepo,
	storeCfg *config.StoreConfig,
) *RegistryService {
	return &RegistryService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		store:            storeCfg,
	}
}

// AllocateSerial hands out the next serial ID. The counter is seeded from
// the highest serial already on record so restored or hand-edited rosters
// never collide; the unique index on serial_id backstops the rest, and a
// duplicate key just means another increment. When even the seed query
// fails the allocator falls back to a randomized ID above the base.
func (s *RegistryService) AllocateSerial(ctx context.Context) (int64, error) {
	floor, err := s.userRepo.MaxSerialID(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("serial seed query failed, using randomized fallback")
		return s.randomSerial(), nil
	}
	if floor < s.store.SerialBase {
		floor = s.store.SerialBase
	}

	for i := 0; i < serialAllocateRetries; i++ {
		serial, err := s.userRepo.NextSerialID(ctx, floor)
		if err != nil {
			log.Warn().Err(err).Msg("serial counter unavailable, using randomized fallback")
			return s.randomSerial(), nil
		}
		if _, err := s.userRepo.FindBySerialID(ctx, serial); err == mongo.ErrNoDocuments {
			return serial, nil
		}
	}
	return 0, ErrSerialTaken
}

func (s *RegistryService) randomSerial() int64 {
	return s.store.SerialBase + 1 + rand.Int63n(randomSerialSpan)
}

// ReassignSerial moves a profile to a manually chosen serial ID.
// Reserved master values and serials already held elsewhere are rejected.
func (s *RegistryService) ReassignSerial(ctx context.Context, userID string, serial int64) error {
	if serial <= 0 {
		return errors.New("serial id must be positive")
	}
	if s.store.IsMasterSerial(serial) {
		return ErrSerialReserved
	}

	holder, err := s.userRepo.FindBySerialID(ctx, serial)
	if err == nil && holder.ID != userID {
		return ErrSerialTaken
	}

	if err := s.userRepo.Update(ctx, userID, bson.M{"$set": bson.M{"serial_id": serial}}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSerialTaken
		}
		return err
	}

	log.Info().Str("user_id", userID).Int64("serial_id", serial).Msg("serial id reassigned")
	return nil
}

// ReLinkCredential replaces the linked credential used by serial-ID
// login. Only the hash is stored; the primary password is untouched.
func (s *RegistryService) ReLinkCredential(ctx context.Context, userID, newPassword string) error {
	hashed, err := password.Hash(newPassword)
	if err != nil {
		return errors.New("failed to hash password")
	}

	if err := s.userRepo.Update(ctx, userID, bson.M{"$set": bson.M{"linked_password": hashed}}); err != nil {
		return err
	}

	// the credential changed, outstanding sessions are no longer trusted
	_ = s.refreshTokenRepo.DeleteByUserID(ctx, userID)

	log.Info().Str("user_id", userID).Msg("linked credential replaced")
	return nil
}

// SyncResult reports what the roster repair changed
type SyncResult struct {
	AdminFixed int `json:"admin_fixed"`
	Evicted    int `json:"evicted"`
	Demoted    int `json:"demoted"`
}

// SyncMaster repairs the master end of the number space: the configured
// admin email is pinned to the master serial with the admin role, and any
// other profile squatting on a reserved serial is moved to a randomized
// ID and demoted to a plain user.
func (s *RegistryService) SyncMaster(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}
	adminEmail := strings.ToLower(s.store.AdminEmail)

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == adminEmail {
			if u.SerialID != s.store.MasterSerialID() || u.Role != auth.RoleAdmin {
				update := bson.M{"$set": bson.M{
					"serial_id": s.store.MasterSerialID(),
					"role":      auth.RoleAdmin,
				}}
				if err := s.userRepo.Update(ctx, u.ID, update); err != nil {
					return nil, err
				}
				result.AdminFixed++
			}
			continue
		}

		if s.store.IsMasterSerial(u.SerialID) {
			update := bson.M{"$set": bson.M{
				"serial_id": s.randomSerial(),
				"role":      auth.RoleUser,
			}}
			if err := s.userRepo.Update(ctx, u.ID, update); err != nil {
				return nil, err
			}
			result.Evicted++
			result.Demoted++
		}
	}

	log.Info().
		Int("admin_fixed", result.AdminFixed).
		Int("evicted", result.Evicted).
		Msg("master serial sync complete")
	return result, nil
}

// CleanAdmins demotes every admin except the master account to a plain
// user with no permissions.
func (s *RegistryService) CleanAdmins(ctx context.Context) (int, error) {
	adminEmail := strings.ToLower(s.store.AdminEmail)

	admins, err := s.userRepo.ListByRole(ctx, auth.RoleAdmin)
	if err != nil {
		return 0, err
	}

	demoted := 0
	for _, u := range admins {
		if u.Email == adminEmail || s.store.IsMasterSerial(u.SerialID) {
			continue
		}
		update := bson.M{"$set": bson.M{
			"role":        auth.RoleUser,
			"permissions": []auth.Permission{},
		}}
		if err := s.userRepo.Update(ctx, u.ID, update); err != nil {
			return demoted, err
		}
		_ = s.refreshTokenRepo.DeleteByUserID(ctx, u.ID)
		demoted++
	}

	log.Info().Int("demoted", demoted).Msg("admin cleanup complete")
	return demoted, nil
}

// WipeUsers deletes every profile except the master account and revokes
// their sessions. There is no undo.
func (s *RegistryService) WipeUsers(ctx context.Context) (int, error) {
	adminEmail := strings.ToLower(s.store.AdminEmail)

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, u := range users {
		if u.Email == adminEmail || s.store.IsMasterSerial(u.SerialID) {
			continue
		}
		if err := s.userRepo.Delete(ctx, u.ID); err != nil {
			return deleted, err
		}
		_ = s.refreshTokenRepo.DeleteByUserID(ctx, u.ID)
		deleted++
	}

	log.Info().Int("deleted", deleted).Msg("user wipe complete")
	return deleted, nil
}
