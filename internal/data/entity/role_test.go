package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
		ok    bool
	}{
		{"lowercase", "manager", RoleManager, true},
		{"mixed case", "Employee", RoleEmployee, true},
		{"uppercase", "CLIENT", RoleClient, true},
		{"padded", "  supplier  ", RoleSupplier, true},
		{"unknown", "admin", Role("admin"), false},
		{"empty", "", Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRoleIn(t *testing.T) {
	staff := []Role{RoleManager, RoleEmployee}

	assert.True(t, RoleManager.In(staff))
	assert.True(t, RoleEmployee.In(staff))
	assert.False(t, RoleClient.In(staff))
	assert.False(t, RoleSupplier.In(nil))
}
