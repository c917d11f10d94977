package shared_test

import (
	"profmeet/shared"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		id       string
		expected string
	}{
		{
			name:     "prefix and id",
			prefix:   "booking:get",
			id:       "booking-1",
			expected: "booking:get:booking-1",
		},
		{
			name:     "empty id returns prefix only",
			prefix:   "booking:get",
			id:       "",
			expected: "booking:get",
		},
		{
			name:     "wildcard id",
			prefix:   "booking:list:student",
			id:       "*",
			expected: "booking:list:student:*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.id)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestHasText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "plain text",
			input:    "prof@uni.edu",
			expected: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "whitespace only",
			input:    "   \t\n",
			expected: false,
		},
		{
			name:     "text with surrounding whitespace",
			input:    "  name  ",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.HasText(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{
			name:     "first value wins",
			values:   []string{"Custom Title", "Meeting"},
			expected: "Custom Title",
		},
		{
			name:     "skips blank values",
			values:   []string{"", "   ", "Meeting"},
			expected: "Meeting",
		},
		{
			name:     "all blank returns empty",
			values:   []string{"", "  "},
			expected: "",
		},
		{
			name:     "no values returns empty",
			values:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FirstNonEmpty(tt.values...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
