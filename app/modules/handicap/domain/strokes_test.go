package handicapdomain

import "testing"

func TestApplied(t *testing.T) {
	t.Run("full percentage is a no-op", func(t *testing.T) {
		s := DefaultSettings()
		history := scores(40, 45, 50)
		h := Calculate(history, s, 0)
		if got := Applied(h, s); got != h {
			t.Fatalf("100%% allowance changed the handicap: %d -> %d", h, got)
		}
	})

	t.Run("percentage with floor rounding", func(t *testing.T) {
		s := DefaultSettings()
		s.Percentage = 50
		// 9 * 0.5 = 4.5 -> floor 4.
		if got := Applied(9, s); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	})

	t.Run("percentage with half rounding", func(t *testing.T) {
		s := DefaultSettings()
		s.Percentage = 50
		s.Rounding = RoundHalf
		if got := Applied(9, s); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	})
}

func TestNetScore(t *testing.T) {
	if got := NetScore(45, 8); got != 37.0 {
		t.Fatalf("NetScore(45, 8) = %v, want 37.0", got)
	}
	if got := NetScore(45.3, 8); got != 37.3 {
		t.Fatalf("NetScore(45.3, 8) = %v, want 37.3", got)
	}
	// One decimal place, half-up.
	if got := NetScore(45.35, 8); got != 37.4 {
		t.Fatalf("NetScore(45.35, 8) = %v, want 37.4", got)
	}
}

func TestStrokesGiven(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		got := StrokesGiven(10, 4, DefaultSettings())
		if got.TeamA != 10 || got.TeamB != 4 {
			t.Fatalf("expected {10 4}, got %+v", got)
		}
	})

	t.Run("difference", func(t *testing.T) {
		s := DefaultSettings()
		s.AllowanceType = AllowanceDifference

		got := StrokesGiven(10, 4, s)
		if got.TeamA != 6 || got.TeamB != 0 {
			t.Fatalf("expected {6 0}, got %+v", got)
		}

		got = StrokesGiven(4, 10, s)
		if got.TeamA != 0 || got.TeamB != 6 {
			t.Fatalf("expected {0 6}, got %+v", got)
		}

		got = StrokesGiven(7, 7, s)
		if got.TeamA != 0 || got.TeamB != 0 {
			t.Fatalf("expected {0 0}, got %+v", got)
		}
	})

	t.Run("percentage", func(t *testing.T) {
		s := DefaultSettings()
		s.AllowanceType = AllowancePercentage
		s.Percentage = 50

		got := StrokesGiven(10, 4, s)
		if got.TeamA != 5 || got.TeamB != 2 {
			t.Fatalf("expected {5 2}, got %+v", got)
		}
	})

	t.Run("max strokes clamps the gap", func(t *testing.T) {
		s := DefaultSettings()
		s.MaxStrokes = intPtr(10)

		got := StrokesGiven(20, 4, s)
		if got.TeamA != 14 || got.TeamB != 4 {
			t.Fatalf("expected {14 4}, got %+v", got)
		}

		got = StrokesGiven(4, 20, s)
		if got.TeamA != 4 || got.TeamB != 14 {
			t.Fatalf("expected {4 14}, got %+v", got)
		}
	})

	t.Run("never below zero", func(t *testing.T) {
		got := StrokesGiven(-3, 5, DefaultSettings())
		if got.TeamA != 0 || got.TeamB != 5 {
			t.Fatalf("expected {0 5}, got %+v", got)
		}
	})
}

func TestSuggestPoints(t *testing.T) {
	cases := []struct {
		name       string
		netA, netB float64
		wantA      int
		wantB      int
	}{
		{"team A wins", 35, 40, 2, 0},
		{"team B wins", 40, 35, 0, 2},
		{"tie splits", 36, 36, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SuggestPoints(tc.netA, tc.netB)
			if got.TeamAPoints != tc.wantA || got.TeamBPoints != tc.wantB {
				t.Fatalf("SuggestPoints(%v, %v) = %+v, want {%d %d}",
					tc.netA, tc.netB, got, tc.wantA, tc.wantB)
			}
		})
	}
}
