package httputil

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid HTTPS", "https://example.com/path", false},
		{"HTTP rejected", "http://example.com/path", true},
		{"protocol relative rejected", "//videos.sproutvideo.com/embed/1/2", true},
		{"javascript scheme rejected", "javascript:alert(1)", true},
		{"data scheme rejected", "data:text/html,<h1>Hi</h1>", true},
		{"FTP rejected", "ftp://example.com/file", true},
		{"empty string", "", true},
		{"no host", "https://", true},
		{"valid with port", "https://example.com:8080/path", false},
		{"valid with query", "https://example.com/path?q=test&a=b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"sproutvideo id", "d39bd5b51f1be1c4", false},
		{"sproutvideo id pair", "d39bd5b51f1be1c4/2e7a4d1c", false},
		{"youtube id", "jNQXAC9IVRw", false},
		{"youtube id with dash and underscore", "a-b_c", false},
		{"empty", "", true},
		{"path traversal dots", "../../etc/passwd", true},
		{"leading slash", "/1234", true},
		{"trailing slash", "1234/", true},
		{"empty segment", "a//b", true},
		{"only slashes", "//", true},
		{"query injection", "1234?autoPlay=true", true},
		{"fragment injection", "1234#x", true},
		{"ampersand injection", "123&loop=true", true},
		{"quote injection", `123" onload="x`, true},
		{"newline injection", "123\n456", true},
		{"too long", strings.Repeat("a", 300), true},
		{"spaces", "video id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNumericID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "76979871", false},
		{"zero", "0", false},
		{"empty", "", true},
		{"letters", "abc", true},
		{"mixed", "123abc", true},
		{"negative", "-1", true},
		{"decimal", "1.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumericID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNumericID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
