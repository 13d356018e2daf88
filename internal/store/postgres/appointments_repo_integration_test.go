package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"salon/backend/internal/domain"
	"salon/backend/internal/store"
)

// openTestDB connects to SALON_TEST_DATABASE_URL, creates a throwaway schema
// and applies the migrations into it. The pool is pinned to one connection so
// the session search_path sticks.
func openTestDB(t *testing.T) *bun.DB {
	t.Helper()

	databaseURL := strings.TrimSpace(os.Getenv("SALON_TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("SALON_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := Open(ctx, databaseURL, PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(db)
	})

	schema := "salon_test_" + randomHex(t, 8)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = db.NewRaw("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Exec(ctx)
	})

	if _, err := db.NewRaw("CREATE SCHEMA " + schema).Exec(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	if _, err := db.NewRaw("SET search_path TO " + schema + ", public").Exec(ctx); err != nil {
		t.Fatalf("set search_path: %v", err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestPostgresIntegration_BookingOverlapAndCancellation(t *testing.T) {
	db := openTestDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := NewUserRepo(db)
	services := NewServiceRepo(db)
	appts := NewAppointmentRepo(db)

	provider, err := users.CreateUser(ctx, domain.User{Username: "sam", PasswordHash: "x", Role: domain.RoleProvider, Name: "Sam", Location: "Oslo"})
	if err != nil {
		t.Fatalf("CreateUser provider: %v", err)
	}
	customer, err := users.CreateUser(ctx, domain.User{Username: "alex", PasswordHash: "x", Role: domain.RoleCustomer, Name: "Alex"})
	if err != nil {
		t.Fatalf("CreateUser customer: %v", err)
	}
	if _, err := users.CreateUser(ctx, domain.User{Username: "sam", PasswordHash: "x", Role: domain.RoleCustomer, Name: "Other"}); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("duplicate username err = %v, want %v", err, store.ErrDuplicate)
	}

	svc, err := services.CreateService(ctx, domain.Service{ProviderID: provider.ID, Name: "Haircut", PriceCents: 2500, DurationMinutes: 30})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	date := domain.Date{Year: 2026, Month: time.March, Day: 3}
	book := func(start, end domain.TimeOfDay) (domain.Appointment, error) {
		var out domain.Appointment
		err := appts.InProviderDayTransaction(ctx, provider.ID, date, func(ctx context.Context, tx store.BookingTx) error {
			a, err := tx.InsertAppointment(ctx, domain.Appointment{
				CustomerID: customer.ID,
				ProviderID: provider.ID,
				ServiceID:  svc.ID,
				Date:       date,
				Start:      start,
				End:        end,
				Status:     domain.StatusPending,
			})
			out = a
			return err
		})
		return out, err
	}

	first, err := book(540, 570)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	if _, err := book(555, 585); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("overlap err = %v, want %v", err, store.ErrConflict)
	}

	if _, err := book(570, 600); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}

	err = appts.InTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		got, err := tx.GetAppointmentForUpdate(ctx, first.ID)
		if err != nil {
			return err
		}
		if got.Status != domain.StatusPending {
			return fmt.Errorf("status = %s, want %s", got.Status, domain.StatusPending)
		}
		return tx.UpdateAppointmentStatus(ctx, first.ID, domain.StatusCancelled)
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := book(540, 570); err != nil {
		t.Fatalf("rebooking cancelled slot: %v", err)
	}

	onDay, err := appts.FindAppointmentsForProviderOnDate(ctx, provider.ID, date)
	if err != nil {
		t.Fatalf("FindAppointmentsForProviderOnDate: %v", err)
	}
	if len(onDay) != 3 {
		t.Fatalf("len(onDay) = %d, want 3", len(onDay))
	}
	if onDay[0].Date != date {
		t.Fatalf("date round trip = %v, want %v", onDay[0].Date, date)
	}

	listed, err := appts.ListForProvider(ctx, provider.ID)
	if err != nil {
		t.Fatalf("ListForProvider: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("len(listed) = %d, want 3", len(listed))
	}
	for _, d := range listed {
		if d.ServiceName != "Haircut" || d.CustomerName != "Alex" || d.ProviderName != "Sam" {
			t.Fatalf("detail names = %q %q %q", d.ServiceName, d.CustomerName, d.ProviderName)
		}
	}

	mine, err := appts.ListForCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListForCustomer: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("len(mine) = %d, want 3", len(mine))
	}

	err = appts.InTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		_, err := tx.GetAppointmentForUpdate(ctx, uuid.MustParse("00000000-0000-0000-0000-000000000999"))
		return err
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("missing appointment err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestPostgresIntegration_ServiceCatalog(t *testing.T) {
	db := openTestDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := NewUserRepo(db)
	services := NewServiceRepo(db)

	oslo, err := users.CreateUser(ctx, domain.User{Username: "p1", PasswordHash: "x", Role: domain.RoleProvider, Name: "P1", Location: "Oslo"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	bergen, err := users.CreateUser(ctx, domain.User{Username: "p2", PasswordHash: "x", Role: domain.RoleProvider, Name: "P2", Location: "Bergen"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	cut, err := services.CreateService(ctx, domain.Service{ProviderID: oslo.ID, Name: "Haircut", PriceCents: 2500, DurationMinutes: 30})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if _, err := services.CreateService(ctx, domain.Service{ProviderID: bergen.ID, Name: "Manicure", PriceCents: 1500, DurationMinutes: 45}); err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	cut.PriceCents = 3000
	updated, err := services.UpdateService(ctx, cut)
	if err != nil {
		t.Fatalf("UpdateService: %v", err)
	}
	if updated.PriceCents != 3000 {
		t.Fatalf("price = %d, want 3000", updated.PriceCents)
	}

	foreign := cut
	foreign.ProviderID = bergen.ID
	if _, err := services.UpdateService(ctx, foreign); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("foreign update err = %v, want %v", err, store.ErrNotFound)
	}

	listings, err := services.Browse(ctx, store.ServiceFilter{Location: "Oslo"})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(listings) != 1 || listings[0].ProviderUsername != "p1" || listings[0].ProviderLocation != "Oslo" {
		t.Fatalf("listings = %+v", listings)
	}

	locations, err := services.DistinctLocations(ctx)
	if err != nil {
		t.Fatalf("DistinctLocations: %v", err)
	}
	if strings.Join(locations, ",") != "Bergen,Oslo" {
		t.Fatalf("locations = %v", locations)
	}

	if err := services.DeleteService(ctx, oslo.ID, cut.ID); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}
	if _, err := services.FindServiceByID(ctx, cut.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("deleted service err = %v, want %v", err, store.ErrNotFound)
	}

	names, err := services.DistinctServiceNames(ctx)
	if err != nil {
		t.Fatalf("DistinctServiceNames: %v", err)
	}
	if strings.Join(names, ",") != "Manicure" {
		t.Fatalf("names = %v", names)
	}
}

func randomHex(t *testing.T, bytesLen int) string {
	t.Helper()
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	return hex.EncodeToString(b)
}

type rawExecutor interface {
	NewRaw(query string, args ...any) *bun.RawQuery
}

func applyMigrations(ctx context.Context, exec rawExecutor) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type mig struct {
		name string
		path string
	}
	migs := make([]mig, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		migs = append(migs, mig{name: e.Name(), path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].name < migs[j].name })

	for _, m := range migs {
		b, err := os.ReadFile(m.path)
		if err != nil {
			return err
		}
		upSQL, err := extractGooseUp(string(b))
		if err != nil {
			return err
		}
		stmts := splitSQLStatements(upSQL)
		for _, stmt := range stmts {
			if normalized, ok := normalizeExtensionStatement(stmt); ok {
				stmt = normalized
			}
			if _, err := exec.NewRaw(stmt).Exec(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

func migrationsDir() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("runtime.Caller failed")
	}
	base := filepath.Dir(file)
	return filepath.Clean(filepath.Join(base, "..", "..", "..", "migrations")), nil
}

func extractGooseUp(sql string) (string, error) {
	upMarker := "-- +goose Up"
	downMarker := "-- +goose Down"

	upIdx := strings.Index(sql, upMarker)
	if upIdx < 0 {
		return "", fmt.Errorf("missing goose up marker")
	}
	afterUp := sql[upIdx+len(upMarker):]
	afterUp = strings.TrimLeft(afterUp, "\r\n")

	downIdx := strings.Index(afterUp, downMarker)
	if downIdx < 0 {
		return strings.TrimSpace(afterUp), nil
	}
	return strings.TrimSpace(afterUp[:downIdx]), nil
}

func normalizeExtensionStatement(stmt string) (string, bool) {
	s := strings.TrimSpace(stmt)
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "CREATE EXTENSION") {
		return "", false
	}
	if !strings.Contains(upper, "BTREE_GIST") {
		return "", false
	}
	if strings.Contains(upper, " SCHEMA ") {
		return "", false
	}
	return s + " SCHEMA public", true
}

func splitSQLStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
