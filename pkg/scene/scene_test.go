package scene

import "testing"

func TestDummyIndex(t *testing.T) {
	tests := []struct {
		line   string
		want   int
		wantOK bool
	}{
		{"NEW_ENTITY Dummy1", 1, true},
		{"NEW_ENTITY Dummy1042\n", 1042, true},
		{"  NEW_ENTITY Dummy7  \r\n", 7, true},
		{"NEW_ENTITY Dummy", 0, false},
		{"NEW_ENTITY Dummy_3", 0, false},
		{"NEW_ENTITY Dummy3a", 0, false},
		{"NEW_ENTITY VideoDummy3", 0, false},
		{"NEW_ENTITY Player", 0, false},
		{"TRANSFORM 0 0 0 0 0 0 1 1 1", 0, false},
	}

	for _, tt := range tests {
		got, ok := DummyIndex(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("DummyIndex(%q) = %d, %v; want %d, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		line string
		want bool
	}{
		{"dummy numeric", IsDummyEntity, "NEW_ENTITY Dummy12\n", true},
		{"dummy named", IsDummyEntity, "NEW_ENTITY Dummy_Tree", true},
		{"video dummy is not dummy", IsDummyEntity, "NEW_ENTITY VideoDummy1", false},
		{"video dummy", IsVideoDummyEntity, "NEW_ENTITY VideoDummy1", true},
		{"entity", IsEntity, "NEW_ENTITY Camera", true},
		{"not entity", IsEntity, "RENDERER a b", false},
		{"transform", IsTransform, "  TRANSFORM 1 2 3 0 0 0 1 1 1", true},
		{"phong", IsMaterialPhong, "MATERIAL PHONG 32 0.5 0.5 0.5\n", true},
		{"pbr is not phong", IsMaterialPhong, "MATERIAL PBR 1 1 1", false},
		{"rigidbody box", IsRigidbody, "RIGIDBODY BOX 1 1 1 STATIC", true},
		{"comment", IsComment, "# lights", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.line); got != tt.want {
				t.Errorf("got %v, want %v for %q", got, tt.want, tt.line)
			}
		})
	}
}

func TestEntityName(t *testing.T) {
	name, ok := EntityName("NEW_ENTITY Dummy42\n")
	if !ok || name != "Dummy42" {
		t.Errorf("EntityName = %q, %v", name, ok)
	}
	if _, ok := EntityName("NEW_ENTITYDummy"); ok {
		t.Error("expected no name without separator")
	}
	if _, ok := EntityName("MATERIAL PHONG 1 1 1 1"); ok {
		t.Error("expected no name for non-entity line")
	}
}

func TestLineBuilders(t *testing.T) {
	if got := EntityLine(DummyName(5)); got != "NEW_ENTITY Dummy5" {
		t.Errorf("EntityLine = %q", got)
	}
	if got := RendererLine("dummyModel", "phongLitNoShadowShader"); got != "RENDERER dummyModel phongLitNoShadowShader" {
		t.Errorf("RendererLine = %q", got)
	}
	if got := MaterialLine("PHONG 32 0.5 0.5 0.5"); got != "MATERIAL PHONG 32 0.5 0.5 0.5" {
		t.Errorf("MaterialLine = %q", got)
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"NEW_ENTITY A\n",
		"NEW_ENTITY A\nTRANSFORM 0 0 0 0 0 0 1 1 1",
		"NEW_ENTITY A\r\nTRANSFORM 0 0 0 0 0 0 1 1 1\r\n\r\n",
		"\n\n\n",
	}

	for _, in := range inputs {
		lines := SplitLines([]byte(in))
		if got := string(JoinLines(lines)); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestSplitLinesKeepsTerminators(t *testing.T) {
	lines := SplitLines([]byte("a\nb\r\n\nc"))
	want := []string{"a\n", "b\r\n", "\n", "c"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLineEnding(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"MATERIAL PHONG 32 0.5 0.5 0.5\r\n", CRLF},
		{"MATERIAL PHONG 32 0.5 0.5 0.5\n", Newline},
		{"MATERIAL PHONG 32 0.5 0.5 0.5", ""},
		{"\r\n", CRLF},
	}
	for _, tt := range tests {
		if got := LineEnding(tt.line); got != tt.want {
			t.Errorf("LineEnding(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}

	if got := EndingOr("x", CRLF); got != CRLF {
		t.Errorf("EndingOr fallback = %q", got)
	}
	if got := EndingOr("x\n", CRLF); got != Newline {
		t.Errorf("EndingOr own ending = %q", got)
	}
}

func TestDetectLineEnding(t *testing.T) {
	if got := DetectLineEnding(SplitLines([]byte("a\r\nb\n"))); got != CRLF {
		t.Errorf("DetectLineEnding(crlf first) = %q", got)
	}
	if got := DetectLineEnding([]string{"unterminated"}); got != Newline {
		t.Errorf("DetectLineEnding(unterminated) = %q", got)
	}
	if got := DetectLineEnding(nil); got != Newline {
		t.Errorf("DetectLineEnding(nil) = %q", got)
	}
}

func TestWithEnding(t *testing.T) {
	tests := []struct {
		s, eol, want string
	}{
		{"NEW_ENTITY Dummy1", CRLF, "NEW_ENTITY Dummy1\r\n"},
		{"NEW_ENTITY Dummy1\n", CRLF, "NEW_ENTITY Dummy1\r\n"},
		{"NEW_ENTITY Dummy1\r\n", Newline, "NEW_ENTITY Dummy1\n"},
		{"NEW_ENTITY Dummy1\r\n", "", "NEW_ENTITY Dummy1"},
	}
	for _, tt := range tests {
		if got := WithEnding(tt.s, tt.eol); got != tt.want {
			t.Errorf("WithEnding(%q, %q) = %q, want %q", tt.s, tt.eol, got, tt.want)
		}
	}
}
