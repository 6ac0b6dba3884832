package models

import "testing"

func TestDefaultProfileImage(t *testing.T) {
	cases := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "user_profiles/admin.png"},
		{RoleMediaBuyer, "user_profiles/media_buyer.png"},
		{RolePageBuilder, "user_profiles/page_builder.png"},
		{RoleVoiceOver, "user_profiles/voice_over.png"},
	}
	for _, tc := range cases {
		if got := DefaultProfileImage(tc.role); got != tc.want {
			t.Errorf("DefaultProfileImage(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	for _, r := range []Role{"", "admin", "Superuser"} {
		if r.Valid() {
			t.Errorf("role %q should be invalid", r)
		}
	}
}
