package scheduling

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "00:00", want: 0, ok: true},
		{in: "14:00", want: 840, ok: true},
		{in: "23:59", want: 1439, ok: true},
		{in: "09:30", want: 570, ok: true},
		{in: "12:00 AM", want: 0, ok: true},
		{in: "12:00 PM", want: 720, ok: true},
		{in: "02:00 PM", want: 840, ok: true},
		{in: "09:00 AM", want: 540, ok: true},
		{in: "11:59 pm", want: 1439, ok: true},
		{in: " 08:15 ", want: 495, ok: true},
		{in: "", ok: false},
		{in: "25:00", ok: false},
		{in: "10:60", ok: false},
		{in: "13:00 PM", ok: false},
		{in: "0:00 XM", ok: false},
		{in: "noon", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseClock(tt.in)
			if ok != tt.ok {
				t.Fatalf("parseClock(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSessionsInWindow(t *testing.T) {
	tests := []struct {
		name        string
		window      TimeWindow
		duration    int
		instructors int
		want        Capacity
	}{
		{
			name:        "three hour morning window",
			window:      TimeWindow{StartTime: "09:00", EndTime: "12:00"},
			duration:    20,
			instructors: 3,
			want:        Capacity{SessionsPerInstructor: 9, TotalCapacity: 27, TotalMinutes: 180, Utilization: 100},
		},
		{
			name:        "same window in 12h format",
			window:      TimeWindow{StartTime: "09:00 AM", EndTime: "12:00 PM"},
			duration:    20,
			instructors: 3,
			want:        Capacity{SessionsPerInstructor: 9, TotalCapacity: 27, TotalMinutes: 180, Utilization: 100},
		},
		{
			name:        "crosses midnight",
			window:      TimeWindow{StartTime: "23:00", EndTime: "02:00"},
			duration:    30,
			instructors: 2,
			want:        Capacity{SessionsPerInstructor: 6, TotalCapacity: 12, TotalMinutes: 180, Utilization: 100},
		},
		{
			name:        "leftover minutes lower utilization",
			window:      TimeWindow{StartTime: "10:00", EndTime: "11:10"},
			duration:    20,
			instructors: 1,
			want:        Capacity{SessionsPerInstructor: 3, TotalCapacity: 3, TotalMinutes: 70, Utilization: 86},
		},
		{
			name:        "zero instructors",
			window:      TimeWindow{StartTime: "09:00", EndTime: "17:00"},
			duration:    15,
			instructors: 0,
			want:        Capacity{SessionsPerInstructor: 32, TotalCapacity: 0, TotalMinutes: 480, Utilization: 100},
		},
		{
			name:        "session longer than window",
			window:      TimeWindow{StartTime: "09:00", EndTime: "09:30"},
			duration:    45,
			instructors: 2,
			want:        Capacity{SessionsPerInstructor: 0, TotalCapacity: 0, TotalMinutes: 30, Utilization: 0},
		},
		{
			name:        "missing end time",
			window:      TimeWindow{StartTime: "09:00"},
			duration:    20,
			instructors: 3,
			want:        Capacity{},
		},
		{
			name:        "garbage start time",
			window:      TimeWindow{StartTime: "soon", EndTime: "12:00"},
			duration:    20,
			instructors: 3,
			want:        Capacity{},
		},
		{
			name:        "zero duration",
			window:      TimeWindow{StartTime: "09:00", EndTime: "12:00"},
			duration:    0,
			instructors: 3,
			want:        Capacity{},
		},
		{
			name:        "negative duration",
			window:      TimeWindow{StartTime: "09:00", EndTime: "12:00"},
			duration:    -10,
			instructors: 3,
			want:        Capacity{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionsInWindow(tt.window, tt.duration, tt.instructors)
			if got != tt.want {
				t.Errorf("SessionsInWindow() = %+v, want %+v", got, tt.want)
			}
			// Pure function: a second call with the same inputs must agree.
			if again := SessionsInWindow(tt.window, tt.duration, tt.instructors); again != got {
				t.Errorf("SessionsInWindow() not deterministic: %+v then %+v", got, again)
			}
		})
	}
}

func TestCapacityGrowsWithInstructors(t *testing.T) {
	w := TimeWindow{StartTime: "09:00", EndTime: "12:00"}
	prev := SessionsInWindow(w, 20, 1).TotalCapacity
	for n := 2; n <= 5; n++ {
		cur := SessionsInWindow(w, 20, n).TotalCapacity
		if cur <= prev {
			t.Errorf("capacity with %d instructors = %d, want > %d", n, cur, prev)
		}
		prev = cur
	}
}

func TestTotalCapacity(t *testing.T) {
	windows := []TimeWindow{
		{ID: "w1", Date: "2026-03-14", StartTime: "09:00", EndTime: "12:00"}, // 9 per instructor
		{ID: "w2", Date: "2026-03-14", StartTime: "02:00 PM", EndTime: "04:00 PM"}, // 6 per instructor
		{ID: "w3", Date: "2026-03-15", StartTime: "bad", EndTime: "12:00"}, // contributes nothing
	}

	if got := TotalCapacity(windows, 20, 2); got != 30 {
		t.Errorf("TotalCapacity = %d, want 30", got)
	}
	if got := TotalCapacity(nil, 20, 2); got != 0 {
		t.Errorf("TotalCapacity(nil) = %d, want 0", got)
	}
}

func TestOverlapWarnings(t *testing.T) {
	windows := []TimeWindow{
		{ID: "a", Date: "2026-03-14", StartTime: "09:00", EndTime: "12:00"},
		{ID: "b", Date: "2026-03-14", StartTime: "11:00", EndTime: "13:00"},
		{ID: "c", Date: "2026-03-14", StartTime: "12:00", EndTime: "14:00"}, // touches a, overlaps b
		{ID: "d", Date: "2026-03-15", StartTime: "09:00", EndTime: "12:00"}, // different date
	}

	warnings := OverlapWarnings(windows)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %+v", len(warnings), warnings)
	}
	seen := make(map[string]bool)
	for _, w := range warnings {
		if w.Date != "2026-03-14" {
			t.Errorf("unexpected warning date %s", w.Date)
		}
		seen[w.FirstID+w.SecondID] = true
	}
	if !seen["ab"] || !seen["bc"] {
		t.Errorf("expected a/b and b/c overlaps, got %+v", warnings)
	}

	if got := OverlapWarnings(windows[:1]); got != nil {
		t.Errorf("single window produced warnings: %+v", got)
	}
}
