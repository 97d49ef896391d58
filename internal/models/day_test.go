package models

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{"Mon", Mon, false},
		{"mon", Mon, false},
		{"MONDAY", Mon, false},
		{" tue ", Tue, false},
		{"Sunday", Sun, false},
		{"", "", true},
		{"xy", "", true},
		{"Blursday", "", true},
	}

	for _, tc := range cases {
		got, err := ParseDay(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDay(%q) expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDay(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDay(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseDaysDropsDuplicates(t *testing.T) {
	days, err := ParseDays("Mon,wed,MON,fri")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Day{Mon, Wed, Fri}
	if len(days) != len(want) {
		t.Fatalf("got %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("got %v, want %v", days, want)
			break
		}
	}
}

func TestParseDaysRejectsInvalid(t *testing.T) {
	if _, err := ParseDays("Mon,Funday"); err == nil {
		t.Error("expected error for invalid day")
	}
}

func TestDayOf(t *testing.T) {
	if got := DayOf(time.Sunday); got != Sun {
		t.Errorf("DayOf(Sunday) = %q", got)
	}
	if got := DayOf(time.Saturday); got != Sat {
		t.Errorf("DayOf(Saturday) = %q", got)
	}
}
