package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL_KnownVector(t *testing.T) {
	t.Parallel()

	got := GravatarURL("alice@example.com")
	assert.Equal(t,
		"https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=200&r=pg&d=mm",
		got)
}

func TestGravatarURL_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GravatarURL("alice@example.com"), GravatarURL("alice@example.com"))
	assert.NotEqual(t, GravatarURL("alice@example.com"), GravatarURL("bob@example.com"))
}

func TestGravatarURL_NormalizesAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GravatarURL("alice@example.com"), GravatarURL("  ALICE@example.com "))
}
