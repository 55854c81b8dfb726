package brd

import (
	"testing"

	"brd-studio-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestMergeContentGenerationAppends(t *testing.T) {
	got, err := MergeContent("Existing scope.", "ignored", "New paragraph.", store.KindGeneration)

	assert.NoError(t, err)
	assert.Equal(t, "Existing scope.\n\nNew paragraph.", got)
}

func TestMergeContentRewriteReplacesFirstOccurrence(t *testing.T) {
	got, err := MergeContent("a foo b", "foo", "<refined>", store.KindRewrite)

	assert.NoError(t, err)
	assert.Equal(t, "a <refined> b", got)
}

func TestMergeContentReplacesOnlyFirstOfRepeated(t *testing.T) {
	got, err := MergeContent("foo then foo again", "foo", "bar", store.KindRewrite)

	assert.NoError(t, err)
	assert.Equal(t, "bar then foo again", got)
}

func TestMergeContentFullReplaceWhenSeedAbsent(t *testing.T) {
	got, err := MergeContent("completely different text", "foo", "replacement", store.KindRewrite)

	assert.NoError(t, err)
	assert.Equal(t, "replacement", got)
}

func TestMergeContentFullReplaceWhenNoSeed(t *testing.T) {
	got, err := MergeContent("conflict section body", "", "resolved body", store.KindAnswer)

	assert.NoError(t, err)
	assert.Equal(t, "resolved body", got)
}

func TestMergeContentRejectsUnknownKind(t *testing.T) {
	_, err := MergeContent("x", "y", "z", store.ResponseKind(99))

	assert.Error(t, err)
}
