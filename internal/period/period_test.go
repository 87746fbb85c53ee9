package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Periodicity
		wantErr bool
	}{
		{"daily", Daily, false},
		{"weekly", Weekly, false},
		{"monthly", "", true},
		{"", "", true},
		{"Daily", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOfDaily(t *testing.T) {
	// Late evening truncates to midnight of the same date
	ts := time.Date(2025, time.March, 14, 23, 45, 12, 0, time.UTC)
	pd := Of(ts, Daily)

	if !pd.Start.Equal(date(2025, time.March, 14)) {
		t.Errorf("Start = %v, want 2025-03-14 midnight", pd.Start)
	}
	if !pd.End.Equal(date(2025, time.March, 15)) {
		t.Errorf("End = %v, want 2025-03-15 midnight", pd.End)
	}
}

func TestOfWeekly(t *testing.T) {
	// 2025-03-10 is a Monday
	monday := date(2025, time.March, 10)

	tests := []struct {
		name string
		ts   time.Time
	}{
		{"monday itself", monday},
		{"midweek", time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC)},
		{"saturday", date(2025, time.March, 15)},
		{"sunday maps back to previous monday", time.Date(2025, time.March, 16, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd := Of(tt.ts, Weekly)
			if !pd.Start.Equal(monday) {
				t.Errorf("Of(%v, Weekly).Start = %v, want %v", tt.ts, pd.Start, monday)
			}
			if !pd.End.Equal(monday.AddDate(0, 0, 7)) {
				t.Errorf("Of(%v, Weekly).End = %v, want %v", tt.ts, pd.End, monday.AddDate(0, 0, 7))
			}
		})
	}
}

func TestPeriodHalfOpen(t *testing.T) {
	pd := Of(date(2025, time.March, 14), Daily)

	if !pd.Contains(pd.Start) {
		t.Error("period should contain its own start")
	}
	if pd.Contains(pd.End) {
		t.Error("period should not contain its end (half-open interval)")
	}
	if !pd.Contains(pd.End.Add(-time.Second)) {
		t.Error("period should contain the instant just before its end")
	}
}

func TestPeriodsTileWithoutGaps(t *testing.T) {
	for _, p := range []Periodicity{Daily, Weekly} {
		pd := Of(date(2025, time.January, 6), p)
		for i := 0; i < 60; i++ {
			next := Next(pd, p)
			if !next.Start.Equal(pd.End) {
				t.Fatalf("%s: gap between %v and %v", p, pd.End, next.Start)
			}
			if !IsAdjacent(pd, next, p) {
				t.Fatalf("%s: Next period not adjacent at %v", p, pd.Start)
			}
			pd = next
		}
	}
}

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name string
		p    Periodicity
		a, b time.Time
		want bool
	}{
		{"consecutive days", Daily, date(2025, time.March, 14), date(2025, time.March, 15), true},
		{"same day", Daily, date(2025, time.March, 14), date(2025, time.March, 14), false},
		{"gap of one day", Daily, date(2025, time.March, 14), date(2025, time.March, 16), false},
		{"reverse order", Daily, date(2025, time.March, 15), date(2025, time.March, 14), false},
		{"month boundary", Daily, date(2025, time.March, 31), date(2025, time.April, 1), true},
		{"year boundary", Daily, date(2025, time.December, 31), date(2026, time.January, 1), true},
		{"consecutive weeks", Weekly, date(2025, time.March, 10), date(2025, time.March, 18), true},
		{"same week", Weekly, date(2025, time.March, 10), date(2025, time.March, 15), false},
		{"two weeks apart", Weekly, date(2025, time.March, 10), date(2025, time.March, 24), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAdjacent(Of(tt.a, tt.p), Of(tt.b, tt.p), tt.p)
			if got != tt.want {
				t.Errorf("IsAdjacent(%v, %v, %s) = %v, want %v", tt.a, tt.b, tt.p, got, tt.want)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name string
		p    Periodicity
		a, b time.Time
		want int
	}{
		{"equal days", Daily, date(2025, time.March, 14), date(2025, time.March, 14), 0},
		{"next day", Daily, date(2025, time.March, 14), date(2025, time.March, 15), 1},
		{"five days later", Daily, date(2025, time.March, 1), date(2025, time.March, 6), 5},
		{"negative when reversed", Daily, date(2025, time.March, 6), date(2025, time.March, 1), -5},
		{"same week", Weekly, date(2025, time.March, 10), date(2025, time.March, 16), 0},
		{"next week", Weekly, date(2025, time.March, 10), date(2025, time.March, 17), 1},
		{"four weeks later", Weekly, date(2025, time.March, 3), date(2025, time.March, 31), 4},
		{"across year boundary", Weekly, date(2025, time.December, 29), date(2026, time.January, 5), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Between(Of(tt.a, tt.p), Of(tt.b, tt.p), tt.p)
			if got != tt.want {
				t.Errorf("Between(%v, %v, %s) = %d, want %d", tt.a, tt.b, tt.p, got, tt.want)
			}
		})
	}
}

func TestBetweenAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2025-03-30 is the spring-forward date in Berlin: that calendar day has
	// only 23 hours. Day counting must still see exactly one period.
	before := time.Date(2025, time.March, 29, 12, 0, 0, 0, loc)
	after := time.Date(2025, time.March, 30, 12, 0, 0, 0, loc)

	if got := Between(Of(before, Daily), Of(after, Daily), Daily); got != 1 {
		t.Errorf("Between across spring-forward = %d, want 1", got)
	}
	if !IsAdjacent(Of(before, Daily), Of(after, Daily), Daily) {
		t.Error("days across spring-forward should be adjacent")
	}
}

func TestString(t *testing.T) {
	day := Of(date(2025, time.March, 14), Daily)
	if got := day.String(); got != "2025-03-14" {
		t.Errorf("daily String() = %q, want %q", got, "2025-03-14")
	}

	week := Of(date(2025, time.March, 14), Weekly)
	if got := week.String(); got != "week of 2025-03-10" {
		t.Errorf("weekly String() = %q, want %q", got, "week of 2025-03-10")
	}
}
