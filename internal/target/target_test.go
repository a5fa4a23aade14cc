package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kessho-pm/kessho/internal/target"
)

func TestParseRoundTrip(t *testing.T) {
	for _, tt := range []target.Target{target.System, target.User} {
		parsed, err := target.Parse(tt.String())
		assert.NoError(t, err)
		assert.Equal(t, tt, parsed)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := target.Parse("everywhere")
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, target.System.Valid())
	assert.True(t, target.User.Valid())
	assert.False(t, target.Target(99).Valid())
}
