package infra

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"server/internal/sqlinline"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
}

func TestMigrateIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	db, err := OpenDB(cfg)
	if err != nil {
		t.Fatalf("OpenDB() error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db, "first-password"); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO book_donations (name, email, book_title, description) VALUES (?, ?, ?, ?)`,
		"Jane", "jane@example.org", "Dune", ""); err != nil {
		t.Fatalf("insert error: %v", err)
	}

	// Second run must neither drop data nor duplicate the seed.
	if err := Migrate(ctx, db, "second-password"); err != nil {
		t.Fatalf("second Migrate() error: %v", err)
	}

	var donations int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM book_donations`).Scan(&donations); err != nil {
		t.Fatalf("count donations error: %v", err)
	}
	if donations != 1 {
		t.Fatalf("donations = %d, want 1", donations)
	}

	var admins int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&admins); err != nil {
		t.Fatalf("count admins error: %v", err)
	}
	if admins != 1 {
		t.Fatalf("admin rows = %d, want 1", admins)
	}

	var password string
	if err := db.QueryRowContext(ctx,
		`SELECT password FROM admin_users WHERE username = 'admin'`).Scan(&password); err != nil {
		t.Fatalf("read seed error: %v", err)
	}
	if password != "first-password" {
		t.Fatalf("seed password = %q, want the first run's value", password)
	}
}

func TestSeededCredentialsMatchByEquality(t *testing.T) {
	cfg := testConfig(t)
	db, err := OpenDB(cfg)
	if err != nil {
		t.Fatalf("OpenDB() error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db, "pageforward2025"); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}

	runner := NewSQLRunner(db, zerolog.Nop())

	var id int64
	var username string
	err = runner.QueryRow(ctx, sqlinline.QSelectAdminByCredentials, "admin", "pageforward2025").
		Scan(&id, &username)
	if err != nil {
		t.Fatalf("seeded credentials rejected: %v", err)
	}
	if username != "admin" {
		t.Fatalf("username = %q, want admin", username)
	}

	err = runner.QueryRow(ctx, sqlinline.QSelectAdminByCredentials, "admin", "wrong").
		Scan(&id, &username)
	if err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestListQueriesOrderNewestFirst(t *testing.T) {
	cfg := testConfig(t)
	db, err := OpenDB(cfg)
	if err != nil {
		t.Fatalf("OpenDB() error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db, "pw"); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}

	stamps := []string{
		"2025-03-01 10:00:00",
		"2025-03-02 10:00:00",
		"2025-03-02 10:00:00", // same second, id breaks the tie
	}
	for i, stamp := range stamps {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO book_donations (name, email, book_title, description, date_added) VALUES (?, ?, ?, ?, ?)`,
			"Donor", "d@example.org", "Book", "", stamp); err != nil {
			t.Fatalf("insert %d error: %v", i, err)
		}
	}

	runner := NewSQLRunner(db, zerolog.Nop())
	rows, err := runner.Query(ctx, sqlinline.QListBookDonations)
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	defer rows.Close()

	var got []struct {
		id    int64
		added time.Time
	}
	for rows.Next() {
		var id int64
		var name, email, title, description string
		var added time.Time
		if err := rows.Scan(&id, &name, &email, &title, &description, &added); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		got = append(got, struct {
			id    int64
			added time.Time
		}{id, added})
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.added.After(prev.added) {
			t.Fatalf("row %d newer than row %d", i, i-1)
		}
		if cur.added.Equal(prev.added) && cur.id > prev.id {
			t.Fatalf("tie at %v not broken by id descending", cur.added)
		}
	}
}
