package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{" Teacher ", RoleTeacher, true},
		{"STUDENT", RoleStudent, true},
		{"principal", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.False(t, Role("root").Valid())
}

func TestRoleClassAllows(t *testing.T) {
	assert.True(t, AdminOnly.Allows(RoleAdmin))
	assert.False(t, AdminOnly.Allows(RoleTeacher))

	assert.True(t, TeacherOrAdmin.Allows(RoleTeacher))
	assert.True(t, TeacherOrAdmin.Allows(RoleAdmin))
	assert.False(t, TeacherOrAdmin.Allows(RoleStudent))

	for _, r := range []Role{RoleAdmin, RoleTeacher, RoleStudent} {
		assert.True(t, AnyRole.Allows(r))
	}
	assert.False(t, AnyRole.Allows(Role("guest")))

	// Roles() mengembalikan salinan
	roles := AdminOnly.Roles()
	roles[0] = RoleStudent
	assert.False(t, AdminOnly.Allows(RoleStudent))
}

func TestRoleErrorMessages(t *testing.T) {
	assert.Equal(t, "Only admins can access manage teachers.", RoleErrorAdmin("manage teachers"))
	assert.Equal(t, "Only teachers or admins can access mark attendance.", RoleErrorTeacher("mark attendance"))
}
