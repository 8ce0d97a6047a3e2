package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		field  string
	}{
		{"defaults", DefaultParams(), ""},
		{"9x9(10)", GameParams{Width: 9, Height: 9, MineCount: 10}, ""},
		{"1x2(1)", GameParams{Width: 1, Height: 2, MineCount: 1}, ""},
		{"zero width", GameParams{Width: 0, Height: 9, MineCount: 10}, "width"},
		{"negative height", GameParams{Width: 9, Height: -9, MineCount: 10}, "height"},
		{"no mines", GameParams{Width: 9, Height: 9, MineCount: 0}, "mine_count"},
		{"full board", GameParams{Width: 3, Height: 3, MineCount: 9}, "mine_count"},
		{"overfull board", GameParams{Width: 3, Height: 3, MineCount: 20}, "mine_count"},
		{"1x1", GameParams{Width: 1, Height: 1, MineCount: 1}, "mine_count"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams))
			var pe *ParamsError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, test.field, pe.Field)
		})
	}
}

func TestSeed(t *testing.T) {
	p := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.Equal(t, "30:16:99", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)
}

func TestParseSeedInvalid(t *testing.T) {
	for _, seed := range []string{"", "9", "9:9", "a:b:c"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, seed)
	}
}

func TestValidatePosition(t *testing.T) {
	p := GameParams{Width: 4, Height: 3, MineCount: 1}
	assert.True(t, p.ValidatePosition(0, 0))
	assert.True(t, p.ValidatePosition(3, 2))
	assert.False(t, p.ValidatePosition(4, 0))
	assert.False(t, p.ValidatePosition(0, 3))
	assert.False(t, p.ValidatePosition(-1, 1))
}
