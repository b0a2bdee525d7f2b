package errors

import (
	"strings"
	"testing"
)

func TestValidateSeed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid hash", "ooLwW3nvtFpgyRDf2ZYcqVfGkBwFpHrsqTq6j8TwwAHe2gyKEbc", false},
		{"valid short", "fixed-test-seed", false},
		{"valid with dots", "seed.v2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"space", "foo bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeed(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSeed(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSeed) {
				t.Errorf("ValidateSeed(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidSeed)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid png", "drift-ember-12-abcd.png", false},
		{"valid plain", "frame", false},

		{"empty", "", true},
		{"with path /", "path/to/file.png", true},
		{"with path \\", "path\\to\\file.png", true},
		{"hidden file", ".hidden.png", true},
		{"control char", "a\x07.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRedisURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"redis", "redis://localhost:6379/0", false},
		{"tls", "rediss://cache.internal:6380", false},
		{"socket", "unix:///tmp/redis.sock", false},

		{"empty", "", true},
		{"http", "http://localhost:6379", true},
		{"bare host", "localhost:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRedisURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRedisURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ember Dusk", "ember-dusk"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"a, b, c", "a-b-c"},
		{"Ünïcode / slashes", "n-code-slashes"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
