package contact_test

import (
	"strings"
	"testing"

	"github.com/jmvelez/portfolio-api/internal/contact"
)

func TestSanitize_TrimsAndFolds(t *testing.T) {
	sub := contact.Submission{
		FullName: "  Jane Doe  ",
		Email:    " User@Example.COM ",
		Message:  "\tHi there\n",
	}

	clean := sub.Sanitize()
	if clean.FullName != "Jane Doe" {
		t.Fatalf("fullname not trimmed: %q", clean.FullName)
	}
	if clean.Email != "user@example.com" {
		t.Fatalf("email not folded: %q", clean.Email)
	}
	if clean.Message != "Hi there" {
		t.Fatalf("message not trimmed: %q", clean.Message)
	}
}

func TestSanitize_Truncates(t *testing.T) {
	sub := contact.Submission{
		FullName: strings.Repeat("a", 150),
		Email:    "a@b.c",
		Message:  strings.Repeat("x", 2000),
	}

	clean := sub.Sanitize()
	if got := len([]rune(clean.FullName)); got != 100 {
		t.Fatalf("fullname length = %d, want 100", got)
	}
	if clean.Message != strings.Repeat("x", 1000) {
		t.Fatalf("message not cut to first 1000 characters (len=%d)", len(clean.Message))
	}
}

func TestSanitize_TruncateNeverSplitsRune(t *testing.T) {
	// 60 two-rune pairs make 120 runes; the cut lands on a rune boundary.
	sub := contact.Submission{FullName: strings.Repeat("aé", 60), Email: "a@b.c", Message: "hi"}

	clean := sub.Sanitize()
	runes := []rune(clean.FullName)
	if len(runes) != 100 {
		t.Fatalf("fullname rune length = %d, want 100", len(runes))
	}
	if !strings.HasPrefix(sub.FullName, clean.FullName) {
		t.Fatal("truncated fullname is not a prefix of the original")
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	sub := contact.Submission{
		FullName: "  Jane Doe  ",
		Email:    "User@Example.COM",
		Message:  strings.Repeat("m", 1500),
	}

	once := sub.Sanitize()
	twice := contact.Submission{
		FullName: once.FullName,
		Email:    once.Email,
		Message:  once.Message,
	}.Sanitize()

	if once != twice {
		t.Fatalf("sanitize is not idempotent:\n once=%+v\ntwice=%+v", once, twice)
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.c", true},
		{"jane@x.com", true},
		{"User@Example.COM", true},
		{"first.last@sub.domain.org", true},
		{"not-an-email", false},
		{"", false},
		{"@b.c", false},
		{"a@b", false},
		{"a@.c", false},
		{"a b@c.d", false},
		{"a@b .c", false},
	}

	for _, tc := range cases {
		sub := contact.Submission{Email: tc.email}
		if got := sub.ValidEmail(); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestHasAllFields(t *testing.T) {
	full := contact.Submission{FullName: "a", Email: "b", Message: "c"}
	if !full.HasAllFields() {
		t.Fatal("expected all fields present")
	}

	missing := []contact.Submission{
		{Email: "b", Message: "c"},
		{FullName: "a", Message: "c"},
		{FullName: "a", Email: "b"},
		{},
	}
	for i, sub := range missing {
		if sub.HasAllFields() {
			t.Errorf("case %d: expected missing fields for %+v", i, sub)
		}
	}
}
