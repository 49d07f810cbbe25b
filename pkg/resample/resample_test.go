package resample

import (
	"testing"
	"time"
)

func utc(h, m int) time.Time {
	return time.Date(2024, time.January, 1, h, m, 0, 0, time.UTC)
}

func TestGrid(t *testing.T) {
	tests := []struct {
		label string
		start time.Time
		end   time.Time
		step  time.Duration
		want  []time.Time
	}{
		{
			label: "even span",
			start: utc(0, 0),
			end:   utc(0, 30),
			step:  10 * time.Minute,
			want:  []time.Time{utc(0, 0), utc(0, 10), utc(0, 20), utc(0, 30)},
		},
		{
			label: "uneven span stops short of end",
			start: utc(0, 0),
			end:   utc(0, 25),
			step:  10 * time.Minute,
			want:  []time.Time{utc(0, 0), utc(0, 10), utc(0, 20)},
		},
		{
			label: "start equals end",
			start: utc(6, 0),
			end:   utc(6, 0),
			step:  time.Minute,
			want:  []time.Time{utc(6, 0)},
		},
		{
			label: "step longer than span",
			start: utc(0, 0),
			end:   utc(0, 5),
			step:  time.Hour,
			want:  []time.Time{utc(0, 0)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got, err := Grid(tc.start, tc.end, tc.step)
			if err != nil {
				t.Fatalf("Grid: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Grid returned %d points, want %d: %v", len(got), len(tc.want), got)
			}
			for i := range got {
				if !got[i].Equal(tc.want[i]) {
					t.Errorf("point %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestGridDeterministic(t *testing.T) {
	a, err := Grid(utc(0, 0), utc(8, 0), 5*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Grid(utc(0, 0), utc(8, 0), 5*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
	for i := 1; i < len(a); i++ {
		if !a[i-1].Before(a[i]) {
			t.Errorf("grid not strictly increasing at %d", i)
		}
	}
}

func TestGridRejectsBadArguments(t *testing.T) {
	if _, err := Grid(utc(0, 0), utc(1, 0), 0); err == nil {
		t.Error("zero step must be rejected")
	}
	if _, err := Grid(utc(0, 0), utc(1, 0), -time.Minute); err == nil {
		t.Error("negative step must be rejected")
	}
	if _, err := Grid(utc(1, 0), utc(0, 0), time.Minute); err == nil {
		t.Error("end before start must be rejected")
	}
}
