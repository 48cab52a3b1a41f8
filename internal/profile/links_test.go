package profile

import "testing"

func TestFormatHandle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://github.com/madhavjha18", "@madhavjha18"},
		{"https://www.linkedin.com/in/someone-123/", "@someone-123"},
		{"https://leetcode.com/u/Some_user/", "@Some_user"},
		{"https://www.geeksforgeeks.org/profile/abc?tab=activity", "@abc"},
		{"https://x.com/a%20b", "@a%20b"},
		{"https://example.com", "@profile"},
		{"https://example.com/", "@profile"},
		{"github.com/someone", Unset},
		{"", Unset},
		{"::not a url", Unset},
	}
	for _, tt := range tests {
		if got := FormatHandle(tt.in); got != tt.want {
			t.Errorf("FormatHandle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "…"},
		{"hello", 0, "hello"},
		{"héllo wörld", 4, "hél…"},
	}
	for _, tt := range tests {
		if got := Ellipsize(tt.in, tt.max); got != tt.want {
			t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatHandleShort(t *testing.T) {
	got := FormatHandleShort("https://codeforces.com/profile/averyverylonghandle", 14)
	if got != "@averyverylon…" {
		t.Errorf("got %q", got)
	}
}

func TestFormatEmailShort(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"madhavjha18557@gmail.com", 10, "madhavjha…@gmail.com"},
		{"ada@example.com", 10, "ada@example.com"},
		{"  ada@example.com ", 10, "ada@example.com"},
		{"no-at-sign", 10, "no-at-sign"},
		{"@example.com", 10, "@example.com"},
		{"abcdef@x.io", 1, "a…@x.io"},
	}
	for _, tt := range tests {
		if got := FormatEmailShort(tt.in, tt.max); got != tt.want {
			t.Errorf("FormatEmailShort(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestMailtoHref(t *testing.T) {
	if MailtoHref("") != "" {
		t.Error("empty email should give empty href")
	}
	if got := MailtoHref("a@b.c"); got != "mailto:a@b.c" {
		t.Errorf("got %q", got)
	}
}
