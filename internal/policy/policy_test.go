package policy

import (
	"testing"

	"github.com/agencyops/backoffice-api/internal/models"
)

var allActions = []Action{ActionList, ActionView, ActionCreate, ActionUpdate, ActionDelete}

func TestUsersAndClientsAreAdminOnly(t *testing.T) {
	for _, resource := range []Resource{ResourceUsers, ResourceClients} {
		for _, action := range allActions {
			if !Allow(models.RoleAdmin, resource, action) {
				t.Fatalf("admin denied %s on %s", action, resource)
			}
		}
		for _, role := range models.Roles {
			if role == models.RoleAdmin {
				continue
			}
			for _, action := range allActions {
				if Allow(role, resource, action) {
					t.Fatalf("%s allowed %s on %s", role, action, resource)
				}
			}
		}
	}
}

func TestPaymentsAllowStaffAndClientsOnly(t *testing.T) {
	allowed := map[models.Role]bool{
		models.RoleAdmin:   true,
		models.RoleManager: true,
		models.RoleClient:  true,
	}
	for _, role := range models.Roles {
		for _, action := range allActions {
			got := Allow(role, ResourcePayments, action)
			if got != allowed[role] {
				t.Fatalf("payments %s/%s: got %v, want %v", role, action, got, allowed[role])
			}
		}
	}
}

func TestDirectoryReadableByStaffAndClients(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleManager, models.RoleClient} {
		if !Allow(role, ResourceDirectory, ActionList) {
			t.Fatalf("%s denied directory list", role)
		}
	}
	for _, role := range []models.Role{models.RoleMediaBuyer, models.RolePageBuilder, models.RoleVoiceOver, models.RoleVideoEditor} {
		if Allow(role, ResourceDirectory, ActionList) {
			t.Fatalf("%s allowed directory list", role)
		}
	}
}

func TestMediaBuyerProductVerbAsymmetry(t *testing.T) {
	cases := []struct {
		action Action
		want   bool
	}{
		{ActionList, true},
		{ActionView, true},
		{ActionUpdate, true},
		{ActionCreate, false},
		{ActionDelete, false},
	}
	for _, tc := range cases {
		if got := Allow(models.RoleMediaBuyer, ResourceProducts, tc.action); got != tc.want {
			t.Fatalf("media buyer products %s: got %v, want %v", tc.action, got, tc.want)
		}
	}
}

func TestProductsDenyCreativeRoles(t *testing.T) {
	for _, role := range []models.Role{models.RolePageBuilder, models.RoleVoiceOver, models.RoleVideoEditor} {
		for _, action := range allActions {
			if Allow(role, ResourceProducts, action) {
				t.Fatalf("%s allowed %s on products", role, action)
			}
		}
	}
}

func TestOpenResourcesAllowEveryRole(t *testing.T) {
	for _, resource := range []Resource{ResourceCampaigns, ResourcePages, ResourceVoiceOvers, ResourceCreatives} {
		for _, role := range models.Roles {
			for _, action := range allActions {
				if !Allow(role, resource, action) {
					t.Fatalf("%s denied %s on %s", role, action, resource)
				}
			}
		}
	}
}

func TestUnknownResourceDenied(t *testing.T) {
	if Allow(models.RoleAdmin, Resource("bogus"), ActionList) {
		t.Fatal("unknown resource should be denied")
	}
}
