package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/marcus/rd/internal/models"
)

func TestParseCollection(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		want      models.Collection
		wantError bool
	}{
		{
			name: "users",
			arg:  "users",
			want: models.CollectionUsers,
		},
		{
			name: "adminActions",
			arg:  "adminActions",
			want: models.CollectionAdminActions,
		},
		{
			name:      "unknown collection",
			arg:       "widgets",
			wantError: true,
		},
		{
			name:      "empty string",
			arg:       "",
			wantError: true,
		},
		{
			name:      "wrong case",
			arg:       "Users",
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCollection(tc.arg)
			if tc.wantError {
				if err == nil {
					t.Errorf("parseCollection(%q) expected error, got nil", tc.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCollection(%q) unexpected error: %v", tc.arg, err)
			}
			if got != tc.want {
				t.Errorf("parseCollection(%q) = %q, want %q", tc.arg, got, tc.want)
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	got, err := parseFields([]string{"name=Alice", "points=120", "active=true", "note=version 2"})
	if err != nil {
		t.Fatalf("parseFields unexpected error: %v", err)
	}

	want := map[string]any{
		"name":   "Alice",
		"points": 120,
		"active": true,
		"note":   "version 2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseFields = %#v, want %#v", got, want)
	}
}

func TestParseFieldsValueWithEquals(t *testing.T) {
	got, err := parseFields([]string{"image=https://cdn.example.com/a?v=2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["image"] != "https://cdn.example.com/a?v=2" {
		t.Errorf("value split at the wrong '=': %q", got["image"])
	}
}

func TestParseFieldsInvalid(t *testing.T) {
	for _, arg := range []string{"noequals", "=value"} {
		if _, err := parseFields([]string{arg}); err == nil {
			t.Errorf("parseFields(%q) expected error, got nil", arg)
		}
	}
}

func TestParseFieldsEmptyValueIsString(t *testing.T) {
	got, err := parseFields([]string{"description="})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := got["description"].(string); !ok || v != "" {
		t.Errorf("empty value should stay a string: %#v", got["description"])
	}
}

func TestNameWithAliases(t *testing.T) {
	got := nameWithAliases(adminRmCmd)
	if !strings.Contains(got, "rm") || !strings.Contains(got, "delete") {
		t.Errorf("nameWithAliases(adminRmCmd) = %q", got)
	}
}
