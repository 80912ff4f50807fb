package gedcom

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want token
		ok   bool
	}{
		{
			name: "LevelTagOnly",
			line: "0 HEAD",
			want: token{level: 0, tag: "HEAD"},
			ok:   true,
		},
		{
			name: "XrefRecord",
			line: "0 @I1@ INDI",
			want: token{level: 0, xref: "I1", tag: "INDI"},
			ok:   true,
		},
		{
			name: "ValueWithInternalSpaces",
			line: "1 NAME John /Doe/ Jr.",
			want: token{level: 1, tag: "NAME", value: "John /Doe/ Jr."},
			ok:   true,
		},
		{
			name: "DeepLevel",
			line: "2 DATE 1 JAN 1900",
			want: token{level: 2, tag: "DATE", value: "1 JAN 1900"},
			ok:   true,
		},
		{
			name: "TabSeparated",
			line: "1\tSEX\tM",
			want: token{level: 1, tag: "SEX", value: "M"},
			ok:   true,
		},
		{
			name: "EmptyXref",
			line: "0 @@ INDI",
			want: token{level: 0, xref: "", tag: "INDI"},
			ok:   true,
		},
		{name: "NonNumericLevel", line: "x NAME John", ok: false},
		{name: "NegativeLevel", line: "-1 NAME John", ok: false},
		{name: "MissingTagAfterXref", line: "0 @I1@", ok: false},
		{name: "UnterminatedXref", line: "0 @I1 INDI", ok: false},
		{name: "LevelOnly", line: "0", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tokenize(tt.line)
			if ok != tt.ok {
				t.Fatalf("tokenize(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("tokenize(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "Empty", src: "", want: []string{}},
		{name: "BlankOnly", src: "\n\n  \n", want: []string{}},
		{
			name: "UnixEndings",
			src:  "0 HEAD\n1 SOUR test\n",
			want: []string{"0 HEAD", "1 SOUR test"},
		},
		{
			name: "WindowsEndings",
			src:  "0 HEAD\r\n1 SOUR test\r\n",
			want: []string{"0 HEAD", "1 SOUR test"},
		},
		{
			name: "SkipsBlankBetween",
			src:  "0 HEAD\n\n0 TRLR",
			want: []string{"0 HEAD", "0 TRLR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.src)
			if len(got) != len(tt.want) {
				t.Fatalf("splitLines = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
