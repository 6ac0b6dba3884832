package services

import (
	"testing"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
)

// The linked account's role is pinned to Client no matter what the
// composite payload carries.
func TestPinClientRole(t *testing.T) {
	manager := string(models.RoleManager)
	cases := []struct {
		name string
		role *string
	}{
		{"role omitted", nil},
		{"role escalated", &manager},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pinned := pinClientRole(dto.UserRequest{Role: tc.role})
			if pinned.Role == nil || *pinned.Role != string(models.RoleClient) {
				t.Fatalf("pinned role = %v, want %q", pinned.Role, models.RoleClient)
			}
		})
	}
}

func TestPinClientRoleLeavesInputAlone(t *testing.T) {
	manager := string(models.RoleManager)
	req := dto.UserRequest{Role: &manager}
	pinClientRole(req)
	if *req.Role != manager {
		t.Fatalf("input payload mutated: %q", *req.Role)
	}
}
