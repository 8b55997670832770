// Package scene implements the line-oriented scene file contract shared by the
// edit tools: directive keywords, line predicates and line builders.
//
// A scene file is a sequence of lines, each either blank, a comment starting
// with '#', or a directive keyword followed by space-separated fields. The
// package never builds an in-memory model of entities; callers scan lines and
// rely on adjacency.
package scene

import (
	"strconv"
	"strings"
)

// Directive keywords.
const (
	KeywordEntity    = "NEW_ENTITY"
	KeywordTransform = "TRANSFORM"
	KeywordRenderer  = "RENDERER"
	KeywordMaterial  = "MATERIAL"
	KeywordRigidbody = "RIGIDBODY"
)

// Entity name prefixes.
const (
	DummyPrefix      = "Dummy"
	VideoDummyPrefix = "VideoDummy"
)

var (
	dummyEntityPrefix      = KeywordEntity + " " + DummyPrefix
	videoDummyEntityPrefix = KeywordEntity + " " + VideoDummyPrefix
	materialPhongPrefix    = KeywordMaterial + " PHONG"
)

// IsComment reports whether the line is a '#' comment.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// IsEntity reports whether the line declares any entity.
func IsEntity(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), KeywordEntity)
}

// IsDummyEntity reports whether the line declares an entity whose name starts
// with "Dummy". Any suffix matches, numeric or not.
func IsDummyEntity(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), dummyEntityPrefix)
}

// IsVideoDummyEntity reports whether the line declares a VideoDummy entity.
func IsVideoDummyEntity(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), videoDummyEntityPrefix)
}

// IsTransform reports whether the line is a TRANSFORM directive.
func IsTransform(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), KeywordTransform)
}

// IsMaterialPhong reports whether the line is a MATERIAL PHONG directive.
func IsMaterialPhong(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), materialPhongPrefix)
}

// IsRigidbody reports whether the line is a RIGIDBODY directive of any shape.
func IsRigidbody(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), KeywordRigidbody)
}

// EntityName returns the declared name of an entity line.
func EntityName(line string) (string, bool) {
	if !IsEntity(line) {
		return "", false
	}
	rest := strings.TrimPrefix(strings.TrimSpace(line), KeywordEntity)
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// DummyIndex returns N for a line of the exact form "NEW_ENTITY Dummy<N>"
// where N is all decimal digits. Any other suffix reports false.
func DummyIndex(line string) (int, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, dummyEntityPrefix) {
		return 0, false
	}
	suffix := strings.TrimPrefix(trimmed, dummyEntityPrefix)
	if suffix == "" {
		return 0, false
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DummyName returns the managed entity name for index i.
func DummyName(i int) string {
	return DummyPrefix + strconv.Itoa(i)
}

// EntityLine returns a NEW_ENTITY line without terminator.
func EntityLine(name string) string {
	return KeywordEntity + " " + name
}

// RendererLine returns a RENDERER line for the given model and shader names.
func RendererLine(model, shader string) string {
	return KeywordRenderer + " " + model + " " + shader
}

// MaterialLine returns a MATERIAL line from its space-separated body,
// e.g. "PHONG 32 0.5 0.5 0.5".
func MaterialLine(body string) string {
	return KeywordMaterial + " " + body
}
