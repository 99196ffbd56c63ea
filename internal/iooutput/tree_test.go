package iooutput

import (
	"testing"

	"github.com/gnames/gnredlist/pkg/status"
	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)
	tree := sampleTree(t, sampleRules())

	res := RenderTree(tree.Root(), status.Null, 3)
	assert.Contains(res, "Animalia")
	assert.Contains(res, "Chordata")
	assert.Contains(res, "Mammalia")
	assert.Contains(res, "(mammal)")
	assert.Contains(res, "RLI")
	assert.NotContains(res, "Cetartiodactyla")

	res = RenderTree(tree.Root(), status.EXplus, 10)
	assert.Contains(res, "Chelonoidis abingdonii")
	assert.NotContains(res, "Balaena")
}
