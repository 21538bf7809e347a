package token

import "testing"

func TestLookupIdentKeywords(t *testing.T) {
	for spelling, kind := range keywords {
		if got := LookupIdent(spelling); got != kind {
			t.Errorf("LookupIdent(%q) = %v, want %v", spelling, got, kind)
		}
		// The canonical spelling is the kind's own name.
		if kind.String() != spelling {
			t.Errorf("%v.String() = %q, want %q", kind, kind.String(), spelling)
		}
	}
}

func TestLookupIdentPlainIdentifiers(t *testing.T) {
	for _, ident := range []string{"foo", "x", "nums1", "print", "Label", "WHILEx", "ENDW"} {
		if got := LookupIdent(ident); got != IDENT {
			t.Errorf("LookupIdent(%q) = %v, want IDENT", ident, got)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{NEWLINE, "NEWLINE"},
		{NUMBER, "NUMBER"},
		{IDENT, "IDENT"},
		{STRING, "STRING"},
		{EQ, "="},
		{EQEQ, "=="},
		{NOTEQ, "!="},
		{LTEQ, "<="},
		{GTEQ, ">="},
		{ASTERISK, "*"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if got := Kind(-1).String(); got != "UNKNOWN" {
		t.Errorf("Kind(-1).String() = %q, want UNKNOWN", got)
	}
}
