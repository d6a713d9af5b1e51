package db

import "testing"

func TestDSNPrefersExplicitValue(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://u:p@db:5432/x")
	if got := DSN(); got != "postgres://u:p@db:5432/x" {
		t.Fatalf("unexpected dsn: %q", got)
	}
}

func TestDSNFromParts(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("POSTGRES_USER", "sales")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_HOST", "pg")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("POSTGRES_NAME", "crm")
	t.Setenv("POSTGRES_SSLMODE", "")

	want := "postgres://sales:pw@pg:6543/crm?sslmode=disable"
	if got := DSN(); got != want {
		t.Fatalf("dsn: got=%q want=%q", got, want)
	}
}

func TestModels(t *testing.T) {
	if n := len(Models()); n != 3 {
		t.Fatalf("expected 3 models, got %d", n)
	}
}
