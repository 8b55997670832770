package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenegen/pkg/math"
	"github.com/Faultbox/scenegen/pkg/scene"
)

func TestRandomizeRenames(t *testing.T) {
	out, n := Randomize(linesOf(sampleScene), DefaultRandomizeOptions(), testRand(10))
	assert.Equal(t, 3, n)

	var names []string
	for _, l := range out {
		if name, ok := scene.EntityName(l); ok {
			names = append(names, name)
		}
	}
	assert.Equal(t, []string{"Camera", "Dummy1", "Dummy2", "VideoDummy1", "Dummy3"}, names)
	assert.Len(t, out, len(linesOf(sampleScene)))
}

func TestRandomizeTransforms(t *testing.T) {
	out, _ := Randomize(linesOf(sampleScene), DefaultRandomizeOptions(), testRand(11))

	position := math.Box{
		X: math.NewRange(-10, 10),
		Y: math.NewRange(10, 50),
		Z: math.NewRange(-10, 10),
	}
	rotation := math.Cube(math.NewHalfOpenRange(0, 360))

	for _, name := range []string{"Dummy1", "Dummy2"} {
		tr := parseTransformAfter(t, out, name)
		assert.True(t, position.Contains(tr.Position), "%s position %v", name, tr.Position)
		assert.True(t, rotation.Contains(tr.Rotation), "%s rotation %v", name, tr.Rotation)
		assert.Equal(t, math.Splat(0.01), tr.Scale)
	}

	// Camera and VideoDummy keep their transforms
	text := textOf(out)
	assert.Contains(t, text, "TRANSFORM 0.00 5.00 -10.00 0.00 0.00 0.00 1 1 1\n")
	assert.Contains(t, text, "TRANSFORM 0.00 3.00 0.00 0.00 0.00 0.00 1 1 1\n")
}

func TestRandomizeWithoutTransform(t *testing.T) {
	in := "NEW_ENTITY Dummy_Tree\nRENDERER treeModel shader\n"
	out, n := Randomize(linesOf(in), DefaultRandomizeOptions(), testRand(12))
	assert.Equal(t, 1, n)
	assert.Equal(t, "NEW_ENTITY Dummy1\nRENDERER treeModel shader\n", textOf(out))
}

func TestRandomizeManyBounds(t *testing.T) {
	var in []string
	for i := 0; i < 500; i++ {
		in = append(in,
			scene.EntityLine(scene.DummyName(1000-i))+"\n",
			"TRANSFORM 0 0 0 0 0 0 0.01 0.01 0.01\n",
		)
	}

	opts := DefaultRandomizeOptions()
	out, n := Randomize(in, opts, testRand(13))
	require.Equal(t, 500, n)
	require.Len(t, out, 1000)

	for i := 0; i < 500; i++ {
		assert.Equal(t, scene.EntityLine(scene.DummyName(i+1))+"\n", out[2*i])
		tr, err := scene.ParseTransform(out[2*i+1])
		require.NoError(t, err)
		assert.True(t, opts.Position.Contains(tr.Position), "position %v", tr.Position)
		assert.True(t, math.Cube(opts.Rotation).Contains(tr.Rotation), "rotation %v", tr.Rotation)
	}
}

func TestRandomizeNoDummies(t *testing.T) {
	in := "NEW_ENTITY Camera\nTRANSFORM 0 0 0 0 0 0 1 1 1\n"
	out, n := Randomize(linesOf(in), DefaultRandomizeOptions(), testRand(14))
	assert.Equal(t, 0, n)
	assert.Equal(t, in, textOf(out))
}

func TestRandomizeCRLF(t *testing.T) {
	in := crlf(sampleScene)
	out, n := Randomize(linesOf(in), DefaultRandomizeOptions(), testRand(14))
	require.Equal(t, 3, n)

	text := textOf(out)
	assertCRLF(t, text)
	assert.Contains(t, text, "NEW_ENTITY Dummy1\r\nTRANSFORM ")
	assert.Contains(t, text, "TRANSFORM 0.00 5.00 -10.00 0.00 0.00 0.00 1 1 1\r\n")
	assert.Len(t, out, len(linesOf(in)))
}
