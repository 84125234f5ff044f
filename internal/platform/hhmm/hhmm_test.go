package hhmm

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()
	if _, err := Parse("09:30"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := Parse("9:30am"); err == nil {
		t.Fatalf("expected error for non HH:MM input")
	}
}

func TestHour(t *testing.T) {
	t.Parallel()
	got, err := Hour("19:45")
	if err != nil {
		t.Fatalf("hour: %v", err)
	}
	if got != 19 {
		t.Fatalf("expected 19, got %d", got)
	}
	if _, err := Hour("soon"); err == nil {
		t.Fatalf("expected error for unparsable value")
	}
}

func TestAddMinutes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		value   string
		minutes int
		want    string
	}{
		{"simple shift", "09:00", 120, "11:00"},
		{"crosses the hour", "09:45", 30, "10:15"},
		{"wraps past midnight", "23:30", 60, "00:30"},
		{"unparsable returns input", "soon", 60, "soon"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := AddMinutes(tc.value, tc.minutes); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
