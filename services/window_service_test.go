package services

import (
	"testing"
	"time"

	"admission-api/models"
)

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestClassifyWindow(t *testing.T) {
	start := ts("2025-01-01T00:00:00+07:00")
	end := ts("2025-01-31T23:59:00+07:00")

	tests := []struct {
		name  string
		now   string
		start *time.Time
		end   *time.Time
		want  WindowState
	}{
		{
			name:  "no start date",
			now:   "2025-01-15T12:00:00+07:00",
			start: nil,
			end:   end,
			want:  WindowUndefined,
		},
		{
			name:  "no end date",
			now:   "2025-01-15T12:00:00+07:00",
			start: start,
			end:   nil,
			want:  WindowUndefined,
		},
		{
			name:  "before the window",
			now:   "2024-12-31T23:59:59+07:00",
			start: start,
			end:   end,
			want:  WindowUpcoming,
		},
		{
			name:  "exactly at open",
			now:   "2025-01-01T00:00:00+07:00",
			start: start,
			end:   end,
			want:  WindowOpen,
		},
		{
			name:  "mid window",
			now:   "2025-01-15T12:00:00+07:00",
			start: start,
			end:   end,
			want:  WindowOpen,
		},
		{
			name:  "exactly at close",
			now:   "2025-01-31T23:59:00+07:00",
			start: start,
			end:   end,
			want:  WindowOpen,
		},
		{
			name:  "one second past close",
			now:   "2025-01-31T23:59:01+07:00",
			start: start,
			end:   end,
			want:  WindowClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse(time.RFC3339, tt.now)
			if err != nil {
				t.Fatalf("bad test time: %v", err)
			}
			if got := ClassifyWindow(now, tt.start, tt.end); got != tt.want {
				t.Errorf("ClassifyWindow() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPhaseWindowState(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2025-02-10T10:00:00+07:00")

	year := &models.AcademicYear{
		Phase2StartDate: ts("2025-01-01T00:00:00+07:00"),
		Phase2EndDate:   ts("2025-01-31T23:59:00+07:00"),
		Phase3StartDate: ts("2025-02-01T00:00:00+07:00"),
		Phase3EndDate:   ts("2025-02-28T23:59:00+07:00"),
	}

	if got := PhaseWindowState(year, 2, now); got != WindowClosed {
		t.Errorf("phase 2 = %s, want %s", got, WindowClosed)
	}
	if got := PhaseWindowState(year, 3, now); got != WindowOpen {
		t.Errorf("phase 3 = %s, want %s", got, WindowOpen)
	}
	if got := PhaseWindowState(nil, 2, now); got != WindowUndefined {
		t.Errorf("nil year = %s, want %s", got, WindowUndefined)
	}
	if got := PhaseWindowState(year, 4, now); got != WindowUndefined {
		t.Errorf("unknown phase = %s, want %s", got, WindowUndefined)
	}
}
