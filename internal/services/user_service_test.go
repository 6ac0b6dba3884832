package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Admin@Agency.Test", "admin@agency.test"},
		{"  spaced@agency.test  ", "spaced@agency.test"},
		{"already@lower.test", "already@lower.test"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeEmail(tc.in); got != tc.want {
			t.Errorf("normalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// A concurrent duplicate slips past the emailTaken pre-check and fails
// on the unique index instead; that failure must read as the same
// field error, not a server error.
func TestEmailConflictDetection(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres unique violation", unique, true},
		{"wrapped unique violation", fmt.Errorf("create user: %w", unique), true},
		{"translated duplicate key", gorm.ErrDuplicatedKey, true},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, false},
		{"unrelated error", errors.New("connection reset"), false},
		{"no error", nil, false},
	}
	for _, tc := range cases {
		if got := emailConflict(tc.err); got != tc.want {
			t.Errorf("%s: emailConflict = %v, want %v", tc.name, got, tc.want)
		}
	}
}
