package palette

import (
	"testing"

	"github.com/Zachkp/folio/internal/profile"
)

func TestItemsOrder(t *testing.T) {
	p := &profile.Profile{Links: profile.Links{
		Email:    "ada@example.com",
		GitHub:   "https://github.com/ada",
		LinkedIn: "",
		GFG:      "https://gfg.example/ada",
	}}
	items := Items(p)

	if len(items) != len(Sections)+3 {
		t.Fatalf("got %d items, want %d", len(items), len(Sections)+3)
	}
	if items[0] != (Item{Label: "Home", Hint: "#home", Href: "#home"}) {
		t.Errorf("first item = %+v", items[0])
	}
	tail := items[len(Sections):]
	want := []Item{
		{Label: "Open GitHub", Hint: ExternalHint, Href: "https://github.com/ada"},
		{Label: "Open GeeksforGeeks", Hint: ExternalHint, Href: "https://gfg.example/ada"},
		{Label: "Email", Hint: "ada@example.com", Href: "mailto:ada@example.com"},
	}
	for i := range want {
		if tail[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, tail[i], want[i])
		}
	}
}

func TestItemsWithoutLinks(t *testing.T) {
	if got := len(Items(&profile.Profile{})); got != len(Sections) {
		t.Errorf("got %d items, want only sections", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		href     string
		wantKind Kind
		wantID   string
	}{
		{"", None, ""},
		{"#", None, ""},
		{"#projects", Anchor, "projects"},
		{"projects", Anchor, "projects"},
		{"https://github.com/ada", External, "https://github.com/ada"},
		{"http://example.com", External, "http://example.com"},
		{"mailto:a@b.c", External, "mailto:a@b.c"},
	}
	for _, tt := range tests {
		kind, id := Classify(tt.href)
		if kind != tt.wantKind || id != tt.wantID {
			t.Errorf("Classify(%q) = %v, %q; want %v, %q", tt.href, kind, id, tt.wantKind, tt.wantID)
		}
	}
}
