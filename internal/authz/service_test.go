package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceAdminWithRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantPolicy("content", "/admin/products/:id", "GET"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}
	if err := svc.SetAdminRoles(1, []string{"content"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(1, "/api/v1/admin/products/42", "get")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceAdmin(1, "/api/v1/admin/products/42", "POST")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestSetAdminRolesOverride(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantPolicy("content", "/admin/gallery", "GET"); err != nil {
		t.Fatalf("grant content policy failed: %v", err)
	}
	if err := svc.GrantPolicy("orders", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant orders policy failed: %v", err)
	}

	if err := svc.SetAdminRoles(2, []string{"content"}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	roles, err := svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:content" {
		t.Fatalf("roles want [role:content], got=%v", roles)
	}

	if err := svc.SetAdminRoles(2, []string{"orders"}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}
	roles, err = svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:orders" {
		t.Fatalf("roles want [role:orders], got=%v", roles)
	}
}

func TestBootstrapBuiltinRolesGrantsAdminSurface(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if err := svc.SetAdminRoles(3, []string{"admin"}); err != nil {
		t.Fatalf("set roles failed: %v", err)
	}
	if err := svc.SetAdminRoles(4, []string{"super_admin"}); err != nil {
		t.Fatalf("set super roles failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(3, "/admin/products/7", "PUT")
	if err != nil || !allow {
		t.Fatalf("admin should manage products, allow=%v err=%v", allow, err)
	}
	allow, err = svc.EnforceAdmin(3, "/admin/admins", "POST")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatalf("admin must not manage admin accounts")
	}
	allow, err = svc.EnforceAdmin(4, "/admin/admins", "POST")
	if err != nil || !allow {
		t.Fatalf("super_admin should manage admin accounts, allow=%v err=%v", allow, err)
	}
}

func TestNormalizeObjectStripsAPIPrefix(t *testing.T) {
	cases := map[string]string{
		"/api/v1/admin/orders": "/admin/orders",
		"admin/orders":         "/admin/orders",
		"/api/v1":              "/",
		"":                     "/",
	}
	for in, want := range cases {
		if got := NormalizeObject(in); got != want {
			t.Fatalf("NormalizeObject(%q)=%q want %q", in, got, want)
		}
	}
}
