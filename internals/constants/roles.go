package constants

import (
	"fmt"
	"strings"
)

// Role adalah enumerasi tertutup; hanya tiga nilai ini yang valid di token.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

var allRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent}

// ParseRole menerima input case-insensitive ("Admin", " teacher ").
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range allRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// ==========================
// ✅ Role classes (per-route requirement)
// ==========================

// RoleClass adalah kebutuhan role yang dideklarasikan sebuah route.
type RoleClass struct {
	Name    string
	members []Role
}

// Allows adalah satu-satunya tempat pembandingan role dilakukan.
func (rc RoleClass) Allows(r Role) bool {
	for _, m := range rc.members {
		if m == r {
			return true
		}
	}
	return false
}

func (rc RoleClass) Roles() []Role {
	return append([]Role(nil), rc.members...)
}

var (
	AdminOnly      = RoleClass{Name: "admin-only", members: []Role{RoleAdmin}}
	TeacherOrAdmin = RoleClass{Name: "teacher-or-admin", members: []Role{RoleTeacher, RoleAdmin}}
	AnyRole        = RoleClass{Name: "any-role", members: []Role{RoleAdmin, RoleTeacher, RoleStudent}}
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "Only admins can access %s."
	ErrOnlyTeachersCanAccess = "Only teachers or admins can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}
