package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

// testApp wires routes behind a group-mounted Authorize, the same way
// routes.Setup does, with the given caller role pre-injected standing
// in for the JWT + LoadCaller chain.
func testApp(role models.Role, resource policy.Resource) *fiber.App {
	app := fiber.New()
	inject := func(c *fiber.Ctx) error {
		c.Locals(callerKey, policy.Caller{UserID: uuid.New(), Role: role})
		return c.Next()
	}
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	grp := app.Group("", inject, Authorize(resource))
	grp.Get("/things", ok)
	grp.Post("/things", ok)
	grp.Get("/thing/:id", ok)
	grp.Put("/thing/:id", ok)
	grp.Delete("/thing/:id", ok)
	return app
}

func status(t *testing.T, app *fiber.App, method, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp.StatusCode
}

// Group-mounted middleware sees no route params, so the detail/list
// split must come from the request path itself.
func TestActionForGroupMounted(t *testing.T) {
	app := fiber.New()
	var got policy.Action
	grp := app.Group("", func(c *fiber.Ctx) error {
		got = actionFor(c)
		return c.Next()
	})
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	grp.Get("/things", ok)
	grp.Get("/thing/:id", ok)

	status(t, app, fiber.MethodGet, "/things")
	if got != policy.ActionList {
		t.Fatalf("GET /things classified as %q, want %q", got, policy.ActionList)
	}

	status(t, app, fiber.MethodGet, "/thing/"+uuid.NewString())
	if got != policy.ActionView {
		t.Fatalf("GET detail classified as %q, want %q", got, policy.ActionView)
	}
}

func TestIsDetailPath(t *testing.T) {
	id := uuid.NewString()
	cases := []struct {
		path string
		want bool
	}{
		{"/api/user/" + id, true},
		{"/api/user/" + id + "/", true},
		{"/api/users", false},
		{"/api/user/not-a-uuid", false},
		{"/", false},
	}
	for _, tc := range cases {
		if got := isDetailPath(tc.path); got != tc.want {
			t.Errorf("isDetailPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestAuthorizeMediaBuyerProductVerbs(t *testing.T) {
	app := testApp(models.RoleMediaBuyer, policy.ResourceProducts)
	id := uuid.NewString()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{fiber.MethodGet, "/things", fiber.StatusOK},
		{fiber.MethodGet, "/thing/" + id, fiber.StatusOK},
		{fiber.MethodPut, "/thing/" + id, fiber.StatusOK},
		{fiber.MethodPost, "/things", fiber.StatusForbidden},
		{fiber.MethodDelete, "/thing/" + id, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		if got := status(t, app, tc.method, tc.path); got != tc.want {
			t.Fatalf("%s %s: got %d, want %d", tc.method, tc.path, got, tc.want)
		}
	}
}

func TestAuthorizeAdminOnlyUsers(t *testing.T) {
	admin := testApp(models.RoleAdmin, policy.ResourceUsers)
	if got := status(t, admin, fiber.MethodGet, "/things"); got != fiber.StatusOK {
		t.Fatalf("admin list users: got %d", got)
	}

	manager := testApp(models.RoleManager, policy.ResourceUsers)
	if got := status(t, manager, fiber.MethodGet, "/things"); got != fiber.StatusForbidden {
		t.Fatalf("manager list users: got %d, want 403", got)
	}
}

func TestAuthorizeMissingCallerIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Get("/things", Authorize(policy.ResourceCampaigns), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if got := status(t, app, fiber.MethodGet, "/things"); got != fiber.StatusUnauthorized {
		t.Fatalf("missing caller: got %d, want 401", got)
	}
}

func TestAuthorizeOpenResources(t *testing.T) {
	app := testApp(models.RoleVideoEditor, policy.ResourceCreatives)
	id := uuid.NewString()
	for _, tc := range []struct{ method, path string }{
		{fiber.MethodGet, "/things"},
		{fiber.MethodPost, "/things"},
		{fiber.MethodPut, "/thing/" + id},
		{fiber.MethodDelete, "/thing/" + id},
	} {
		if got := status(t, app, tc.method, tc.path); got != fiber.StatusOK {
			t.Fatalf("%s %s: got %d, want 200", tc.method, tc.path, got)
		}
	}
}
