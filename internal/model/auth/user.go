package auth

import (
	"time"
)

// User is a storefront account profile.
// ID is a UUID string and doubles as the opaque account handle; the
// human-facing identity is SerialID.
type User struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Email       string       `bson:"email" json:"email"` // lowercased at write time
	Password    string       `bson:"password" json:"-"`  // bcrypt hash
	SerialID    int64        `bson:"serial_id,omitempty" json:"serial_id,omitempty"`
	Role        UserRole     `bson:"role" json:"role"`
	Status      UserStatus   `bson:"status" json:"status"`
	Permissions []Permission `bson:"permissions,omitempty" json:"permissions,omitempty"` // consulted only for moderators

	// LinkedPassword is the bcrypt hash of the secondary credential used by
	// the serial-ID login path. It is verified, never compared in the clear,
	// and changing it does not change the primary password, so the two can
	// drift until an admin re-links them.
	LinkedPassword string `bson:"linked_password,omitempty" json:"-"`

	DisplayName string     `bson:"display_name" json:"display_name"`
	PhoneNumber string     `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// HasSerial reports whether a serial ID has been assigned
func (u *User) HasSerial() bool {
	return u.SerialID > 0
}

// UserRole is the stored account role
type UserRole string

const (
	RoleUser      UserRole = "user"      // customer
	RoleModerator UserRole = "moderator" // staff limited to an explicit permission set
	RoleAdmin     UserRole = "admin"     // full back-office access
)

// IsValid checks whether the role is one of the known values
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

// String returns the role string
func (r UserRole) String() string {
	return string(r)
}

// UserStatus is the account lifecycle state
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusFrozen  UserStatus = "frozen"  // read-only: browsing allowed, ordering rejected
	UserStatusBlocked UserStatus = "blocked" // session terminated on next auth observation
)

// IsValid checks whether the status is one of the known values
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusFrozen || s == UserStatusBlocked
}

// String returns the status string
func (s UserStatus) String() string {
	return string(s)
}
