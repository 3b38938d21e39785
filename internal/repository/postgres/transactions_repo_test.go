package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "transactions_pkey"}
	if !isUniqueViolation(dup) {
		t.Fatal("expected 23505 to be detected as a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("exec: %w", dup)) {
		t.Fatal("expected wrapped 23505 to be detected")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation must not be treated as duplicate")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatal("plain errors must not be treated as duplicate")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil error must not be treated as duplicate")
	}
}
