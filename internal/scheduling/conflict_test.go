package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
)

type fakeFinder struct {
	findFn func(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error)
}

func (f *fakeFinder) FindAppointmentsForProviderOnDate(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(ctx, providerID, date)
}

func slot(start, end domain.TimeOfDay) domain.Slot {
	return domain.Slot{Start: start, End: end}
}

func TestOverlaps_MatchesHalfOpenRule(t *testing.T) {
	// Exhaustive over a small grid: overlap iff s1 < e2 && s2 < e1.
	for s1 := domain.TimeOfDay(0); s1 < 8; s1++ {
		for e1 := s1 + 1; e1 <= 8; e1++ {
			for s2 := domain.TimeOfDay(0); s2 < 8; s2++ {
				for e2 := s2 + 1; e2 <= 8; e2++ {
					want := s1 < e2 && s2 < e1
					a, b := slot(s1, e1), slot(s2, e2)
					if got := Overlaps(a, b); got != want {
						t.Fatalf("Overlaps(%v, %v) = %v, want %v", a, b, got, want)
					}
					if Overlaps(a, b) != Overlaps(b, a) {
						t.Fatalf("Overlaps not symmetric for %v, %v", a, b)
					}
				}
			}
		}
	}
}

func TestOverlaps_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Slot
		want bool
	}{
		{"back to back", slot(540, 600), slot(600, 630), false},
		{"back to back reversed", slot(600, 630), slot(540, 600), false},
		{"one minute overlap", slot(540, 600), slot(599, 630), true},
		{"contained", slot(540, 600), slot(550, 560), true},
		{"containing", slot(550, 560), slot(540, 600), true},
		{"identical", slot(540, 600), slot(540, 600), true},
		{"disjoint", slot(540, 560), slot(600, 620), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	providerID := uuid.MustParse("00000000-0000-0000-0000-000000000101")
	date := domain.Date{Year: 2024, Month: 6, Day: 1}

	existing := []domain.Appointment{
		{ProviderID: providerID, Date: date, Start: 540, End: 570, Status: domain.StatusPending},
		{ProviderID: providerID, Date: date, Start: 600, End: 660, Status: domain.StatusCancelled},
	}

	var gotProvider uuid.UUID
	var gotDate domain.Date
	finder := &fakeFinder{
		findFn: func(ctx context.Context, id uuid.UUID, d domain.Date) ([]domain.Appointment, error) {
			gotProvider, gotDate = id, d
			return existing, nil
		},
	}

	t.Run("overlap detected", func(t *testing.T) {
		conflict, err := HasConflict(context.Background(), finder, providerID, date, slot(555, 570))
		if err != nil {
			t.Fatalf("HasConflict error: %v", err)
		}
		if !conflict {
			t.Fatalf("expected conflict")
		}
		if gotProvider != providerID || gotDate != date {
			t.Fatalf("finder called with %s %v", gotProvider, gotDate)
		}
	})

	t.Run("back to back is free", func(t *testing.T) {
		conflict, err := HasConflict(context.Background(), finder, providerID, date, slot(570, 585))
		if err != nil {
			t.Fatalf("HasConflict error: %v", err)
		}
		if conflict {
			t.Fatalf("unexpected conflict")
		}
	})

	t.Run("cancelled appointments do not block", func(t *testing.T) {
		conflict, err := HasConflict(context.Background(), finder, providerID, date, slot(615, 645))
		if err != nil {
			t.Fatalf("HasConflict error: %v", err)
		}
		if conflict {
			t.Fatalf("cancelled appointment reported as conflict")
		}
	})

	t.Run("finder error propagates", func(t *testing.T) {
		wantErr := errors.New("boom")
		_, err := HasConflict(context.Background(), &fakeFinder{
			findFn: func(ctx context.Context, id uuid.UUID, d domain.Date) ([]domain.Appointment, error) {
				return nil, wantErr
			},
		}, providerID, date, slot(540, 570))
		if !errors.Is(err, wantErr) {
			t.Fatalf("err = %v, want %v", err, wantErr)
		}
	})
}

func TestFreeStarts(t *testing.T) {
	busy := []domain.Slot{slot(555, 585)}

	got := FreeStarts(540, 600, 15, 15, busy)
	want := []domain.TimeOfDay{540, 585}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if got := FreeStarts(540, 600, 0, 15, nil); got != nil {
		t.Fatalf("zero duration returned %v", got)
	}
	if got := FreeStarts(600, 540, 15, 15, nil); got != nil {
		t.Fatalf("inverted window returned %v", got)
	}
	if got := FreeStarts(1410, 2000, 30, 30, nil); len(got) != 1 || got[0] != 1410 {
		t.Fatalf("window clamped to midnight: got %v", got)
	}
}

func TestBusySlotsSkipsCancelled(t *testing.T) {
	appts := []domain.Appointment{
		{Start: 540, End: 570, Status: domain.StatusConfirmed},
		{Start: 600, End: 630, Status: domain.StatusCancelled},
		{Start: 660, End: 690, Status: domain.StatusCompleted},
	}
	busy := BusySlots(appts)
	if len(busy) != 2 || busy[0] != slot(540, 570) || busy[1] != slot(660, 690) {
		t.Fatalf("busy = %v", busy)
	}
}
