package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "heart", TruncateString("heart", 10))
	assert.Equal(t, "myocar...", TruncateString("myocardial infarction", 9))
	assert.Equal(t, "my", TruncateString("myocardial", 2))
	assert.Equal(t, "", TruncateString("myocardial", 0))
}

func TestWrapText(t *testing.T) {
	got := WrapText("death of tissue due to lack of blood supply", 16)
	assert.Equal(t, []string{"death of tissue", "due to lack of", "blood supply"}, got)

	assert.Equal(t, []string{"pneumonoultramicroscopic"}, WrapText("pneumonoultramicroscopic", 5))
	assert.Equal(t, []string{""}, WrapText("   ", 5))
	assert.Equal(t, []string{"blood supply"}, WrapText("  blood \t supply ", 40))
	assert.Equal(t, []string{"pneumonoultramicroscopic", "lung"}, WrapText("pneumonoultramicroscopic lung", 10))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(1, 3, 5))
	assert.Equal(t, 5, Clamp(9, 3, 5))
	assert.Equal(t, 4, Clamp(4, 3, 5))
	assert.Equal(t, 7, Max(7, 2))
}
