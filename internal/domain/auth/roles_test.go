package auth

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    Role
		wantErr bool
	}{
		{raw: "admin", want: RoleAdmin},
		{raw: " Employee ", want: RoleEmployee},
		{raw: "ADMIN", want: RoleAdmin},
		{raw: "hr", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseRole(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRole(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q", tc.raw, got, err, tc.want)
		}
	}
}

func TestLandingPage(t *testing.T) {
	if got := LandingPage(RoleAdmin); got != "/admin/dashboard" {
		t.Fatalf("admin landing = %q", got)
	}
	if got := LandingPage(RoleEmployee); got != "/employee/profile" {
		t.Fatalf("employee landing = %q", got)
	}
	if got := LandingPage(Role("ghost")); got != EntryPage {
		t.Fatalf("unknown role landing = %q", got)
	}
}

func TestRoleIn(t *testing.T) {
	if !RoleIn(RoleAdmin, []Role{RoleEmployee, RoleAdmin}) {
		t.Fatal("expected admin to be allowed")
	}
	if RoleIn(RoleEmployee, []Role{RoleAdmin}) {
		t.Fatal("expected employee to be rejected")
	}
	if RoleIn(RoleAdmin, nil) {
		t.Fatal("empty allow list admits nobody")
	}
}
