package greeter

import (
	"bytes"
	"testing"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		present  bool
		expected string
	}{
		{
			name:     "name provided",
			input:    "Alice",
			present:  true,
			expected: "Hello, Alice!",
		},
		{
			name:     "no name provided",
			input:    "",
			present:  false,
			expected: "Hello, world!",
		},
		{
			name:     "empty name provided",
			input:    "",
			present:  true,
			expected: "Hello, !",
		},
		{
			name:     "name with whitespace",
			input:    "John Doe",
			present:  true,
			expected: "Hello, John Doe!",
		},
		{
			name:     "name is used verbatim",
			input:    "  spaced  ",
			present:  true,
			expected: "Hello,   spaced  !",
		},
		{
			name:     "value ignored when absent",
			input:    "Alice",
			present:  false,
			expected: "Hello, world!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Greeting(tt.input, tt.present)
			if got != tt.expected {
				t.Errorf("Greeting(%q, %v) = %q, want %q", tt.input, tt.present, got, tt.expected)
			}
		})
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf, "Alice", true)
	if buf.String() != "Hello, Alice!\n" {
		t.Errorf("Run() wrote %q, want %q", buf.String(), "Hello, Alice!\n")
	}

	buf.Reset()
	Run(&buf, "", false)
	if buf.String() != "Hello, world!\n" {
		t.Errorf("Run() wrote %q, want %q", buf.String(), "Hello, world!\n")
	}
}
