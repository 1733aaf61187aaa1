package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Flags(t *testing.T) {
	s := Idle.With(Grounded).With(Moving)

	assert.True(t, s.Has(Grounded))
	assert.True(t, s.Has(Moving|Grounded))
	assert.False(t, s.Has(Jumping))

	s = s.Without(Grounded).With(Jumping)
	assert.False(t, s.Has(Grounded))
	assert.True(t, s.Has(Jumping))
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "Idle"},
		{Grounded, "Grounded"},
		{Moving | Grounded | Running, "Moving|Grounded|Running"},
		{Jumping | Dead, "Jumping|Dead"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}
