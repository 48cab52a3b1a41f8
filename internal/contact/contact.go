// Package contact composes the mailto: link the contact form submits to.
// Nothing is sent by the site itself; the visitor's mail client does that.
package contact

import (
	"strings"
)

// Form is a contact form submission.
type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Subject is the mail subject for f.
func (f Form) Subject() string {
	return "Portfolio: " + f.Name
}

// Body is the mail body for f, addressed to greet.
func (f Form) Body(greet string) string {
	var b strings.Builder
	b.WriteString("Hi ")
	b.WriteString(greet)
	b.WriteString(",\n\n")
	b.WriteString(f.Message)
	b.WriteString("\n\n— ")
	b.WriteString(f.Name)
	b.WriteString("\n")
	b.WriteString(f.Email)
	b.WriteString("\n")
	return b.String()
}

// MailtoURL builds the mailto: link for a submission to the address to.
// Fields are trimmed first. to may be empty, in which case the mail client
// asks for a recipient.
func MailtoURL(to, greet string, f Form) string {
	f = f.Trimmed()
	return "mailto:" + to +
		"?subject=" + EncodeURIComponent(f.Subject()) +
		"&body=" + EncodeURIComponent(f.Body(greet))
}

// EncodeURIComponent percent-encodes s the way browsers encode a single
// URI component: everything except ASCII letters, digits and -_.!~*'() is
// escaped as UTF-8 bytes.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
