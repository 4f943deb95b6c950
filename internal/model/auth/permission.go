package auth

// Permission names one gated admin-panel feature area.
// A closed enumeration instead of free-form tag strings: a typo can no
// longer silently grant or deny access.
type Permission string

const (
	PermDashboard  Permission = "dashboard"
	PermOrders     Permission = "orders"
	PermUsers      Permission = "users"
	PermLinker     Permission = "linker"
	PermCategories Permission = "categories"
	PermProducts   Permission = "list"
	PermAddProduct Permission = "add"
	PermSettings   Permission = "settings"
)

// AllPermissions is the roster shown in the staff manager, in panel order
var AllPermissions = []Permission{
	PermDashboard,
	PermOrders,
	PermUsers,
	PermLinker,
	PermCategories,
	PermProducts,
	PermAddProduct,
	PermSettings,
}

// IsValid checks whether the permission is part of the closed set
func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// String returns the permission tag
func (p Permission) String() string {
	return string(p)
}

// ParsePermissions converts raw tag strings into the closed set,
// rejecting the whole list on the first unknown tag
func ParsePermissions(tags []string) ([]Permission, bool) {
	perms := make([]Permission, 0, len(tags))
	for _, t := range tags {
		p := Permission(t)
		if !p.IsValid() {
			return nil, false
		}
		perms = append(perms, p)
	}
	return perms, true
}
