package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDatasetLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpDatasetLoad,
			err:      errors.New("missing column"),
			expected: "Failed to load dataset: missing column",
		},
		{
			name:     "player operation",
			op:       OpPlayerOpen,
			err:      errors.New("xdg-open not found"),
			expected: "Failed to open player: xdg-open not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		subject  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCategorySelect,
			subject:  "Pop",
			expected: "",
		},
		{
			name:     "includes subject",
			op:       OpCategorySelect,
			subject:  "Polka",
			err:      errors.New("unknown category"),
			expected: "Failed to select category 'Polka': unknown category",
		},
		{
			name:     "empty subject falls back to Format",
			op:       OpDatasetLoad,
			err:      errors.New("boom"),
			expected: "Failed to load dataset: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.subject, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
