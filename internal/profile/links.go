package profile

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Unset is shown in place of a link that is not configured.
const Unset = "set-me"

// Provider is one external profile the site links to.
type Provider struct {
	// Key is the stable name used in element ids and config.
	Key string
	// Label is the human-readable provider name.
	Label string
	URL   string
}

// Providers returns the web profiles in display order. Email is not
// included; it is rendered separately.
func (l Links) Providers() []Provider {
	return []Provider{
		{Key: "github", Label: "GitHub", URL: l.GitHub},
		{Key: "linkedin", Label: "LinkedIn", URL: l.LinkedIn},
		{Key: "leetcode", Label: "LeetCode", URL: l.LeetCode},
		{Key: "codeforces", Label: "Codeforces", URL: l.Codeforces},
		{Key: "gfg", Label: "GeeksforGeeks", URL: l.GFG},
	}
}

// MailtoHref returns the mailto: link for email, or "" when email is empty.
func MailtoHref(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// Ellipsize shortens s to at most maxChars characters, marking the cut
// with an ellipsis. A non-positive maxChars leaves s unchanged.
func Ellipsize(s string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	if maxChars <= 1 {
		return "…"
	}
	r := []rune(s)
	return string(r[:maxChars-1]) + "…"
}

// FormatHandle turns a profile URL into "@<last path segment>", kept
// percent-encoded as a browser reports it. URLs with
// no path give "@profile"; values that are not absolute URLs give Unset.
func FormatHandle(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return Unset
	}
	path := u.EscapedPath()
	if u.Opaque != "" {
		path = u.Opaque
	}
	last := "profile"
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			last = seg
		}
	}
	return "@" + last
}

// FormatHandleShort is FormatHandle limited to maxChars characters.
func FormatHandleShort(raw string, maxChars int) string {
	return Ellipsize(FormatHandle(raw), maxChars)
}

// FormatEmailShort shortens the local part of an address to maxLocal
// characters. Values without a local part are returned trimmed.
func FormatEmailShort(email string, maxLocal int) string {
	s := strings.TrimSpace(email)
	at := strings.Index(s, "@")
	if at <= 0 {
		return s
	}
	local, domain := s[:at], s[at+1:]
	if utf8.RuneCountInString(local) > maxLocal {
		r := []rune(local)
		local = string(r[:max(1, maxLocal-1)]) + "…"
	}
	return local + "@" + domain
}
