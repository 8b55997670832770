package edit

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenegen/pkg/scene"
)

const sampleScene = `LOAD_MODEL dummyModel models/dummy.obj

NEW_ENTITY Camera
TRANSFORM 0.00 5.00 -10.00 0.00 0.00 0.00 1 1 1

NEW_ENTITY Dummy1
TRANSFORM 1.00 20.00 3.00 10.00 20.00 30.00 0.01 0.01 0.01
RENDERER dummyModel phongLitNoShadowShader
MATERIAL PHONG 32 0.5 0.5 0.5

NEW_ENTITY Dummy7
TRANSFORM -4.00 12.00 8.00 0.00 90.00 0.00 0.01 0.01 0.01
RENDERER dummyModel phongLitNoShadowShader
MATERIAL PHONG 32 0.5 0.5 0.5
RIGIDBODY CAPSULE 1.0 1.0 1.8 OFFSET 0.0 2.0 0.0 DYNAMIC

NEW_ENTITY VideoDummy1
TRANSFORM 0.00 3.00 0.00 0.00 0.00 0.00 1 1 1
RENDERER screenModel videoShader
MATERIAL PHONG 16 1 1 1

NEW_ENTITY Dummy_Tree
RENDERER treeModel phongLitNoShadowShader
MATERIAL PHONG 32 0.5 0.5 0.5
`

const threeEntityScene = `NEW_ENTITY Dummy1
TRANSFORM 1.00 20.00 3.00 10.00 20.00 30.00 0.01 0.01 0.01
RENDERER dummyModel phongLitNoShadowShader
MATERIAL PHONG 32 0.5 0.5 0.5

NEW_ENTITY Dummy2
TRANSFORM 2.00 30.00 4.00 15.00 25.00 35.00 0.01 0.01 0.01
RENDERER dummyModel phongLitNoShadowShader
MATERIAL PHONG 32 0.5 0.5 0.5

NEW_ENTITY Dummy3
TRANSFORM 3.00 40.00 5.00 20.00 30.00 40.00 0.01 0.01 0.01
RENDERER dummyModel phongLitNoShadowShader
MATERIAL PHONG 32 0.5 0.5 0.5
`

func linesOf(s string) []string {
	return scene.SplitLines([]byte(s))
}

func textOf(lines []string) string {
	return string(scene.JoinLines(lines))
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// trimmed returns the lines with whitespace and terminators removed.
func trimmed(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

// parseTransformAfter parses the TRANSFORM line following the entity named name.
func parseTransformAfter(t *testing.T, lines []string, name string) scene.Transform {
	t.Helper()
	want := scene.EntityLine(name)
	for i, l := range lines {
		if strings.TrimSpace(l) == want {
			require.Less(t, i+1, len(lines), "entity %s has no following line", name)
			tr, err := scene.ParseTransform(lines[i+1])
			require.NoError(t, err)
			return tr
		}
	}
	t.Fatalf("entity %s not found", name)
	return scene.Transform{}
}

// crlf converts every LF terminator in s to CRLF.
func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// assertCRLF fails when any terminated line in text ends in a bare LF.
func assertCRLF(t *testing.T, text string) {
	t.Helper()
	for i, l := range linesOf(text) {
		if strings.HasSuffix(l, "\n") && !strings.HasSuffix(l, "\r\n") {
			t.Errorf("line %d %q has a bare LF terminator", i+1, l)
		}
	}
}
