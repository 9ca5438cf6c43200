package cmd

import (
	"strings"
	"testing"

	"github.com/marcus/rd/internal/models"
)

func TestResolveActivityOption(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		want      string
		wantError bool
	}{
		{
			name: "empty picks the first option",
			arg:  "",
			want: models.ActivityOptions[0].Description,
		},
		{
			name: "exact match",
			arg:  "Content Creation",
			want: "Content Creation",
		},
		{
			name: "case insensitive",
			arg:  "daily login streak",
			want: "Daily Login Streak",
		},
		{
			name:      "unknown activity",
			arg:       "Skydiving",
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveActivityOption(tc.arg)
			if tc.wantError {
				if err == nil {
					t.Errorf("resolveActivityOption(%q) expected error, got nil", tc.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveActivityOption(%q) unexpected error: %v", tc.arg, err)
			}
			if got.Description != tc.want {
				t.Errorf("resolveActivityOption(%q) = %q, want %q", tc.arg, got.Description, tc.want)
			}
			if got.Points == 0 {
				t.Errorf("resolved option has zero points: %+v", got)
			}
		})
	}
}

func TestResolveActivityOptionErrorListsChoices(t *testing.T) {
	_, err := resolveActivityOption("Skydiving")
	if err == nil {
		t.Fatal("expected error for unknown activity")
	}
	for _, opt := range models.ActivityOptions {
		if !strings.Contains(err.Error(), opt.Description) {
			t.Errorf("error should list %q: %s", opt.Description, err)
		}
	}
}

func TestActivityOptionList(t *testing.T) {
	got := activityOptionList()
	if !strings.Contains(got, "Task Completion (+10)") {
		t.Errorf("activityOptionList() = %q", got)
	}
	if n := strings.Count(got, ", "); n != len(models.ActivityOptions)-1 {
		t.Errorf("expected %d separators, got %d in %q", len(models.ActivityOptions)-1, n, got)
	}
}
