package boxer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightClassFor(t *testing.T) {
	cases := []struct {
		weight int
		want   string
	}{
		{203, WeightClassHeavyweight},
		{250, WeightClassHeavyweight},
		{202, WeightClassMiddleweight},
		{166, WeightClassMiddleweight},
		{165, WeightClassLightweight},
		{133, WeightClassLightweight},
		{132, WeightClassFeatherweight},
		{125, WeightClassFeatherweight},
	}

	for _, tc := range cases {
		got, err := WeightClassFor(tc.weight)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "weight %d", tc.weight)
	}
}

func TestWeightClassForRejectsBelowFeatherweight(t *testing.T) {
	_, err := WeightClassFor(124)
	assert.Error(t, err)
}

func TestNewBoxerParamsValidate(t *testing.T) {
	valid := NewBoxerParams{Name: "Rocky Balboa", Weight: 210, Height: 71, Reach: 74.5, Age: 32}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*NewBoxerParams)
		field  string
	}{
		{"empty name", func(p *NewBoxerParams) { p.Name = "" }, "name"},
		{"weight below minimum", func(p *NewBoxerParams) { p.Weight = 124 }, "weight"},
		{"zero height", func(p *NewBoxerParams) { p.Height = 0 }, "height"},
		{"negative reach", func(p *NewBoxerParams) { p.Reach = -1 }, "reach"},
		{"too young", func(p *NewBoxerParams) { p.Age = 17 }, "age"},
		{"too old", func(p *NewBoxerParams) { p.Age = 41 }, "age"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)

			err := p.Validate()
			assert.Error(t, err)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestResultValid(t *testing.T) {
	assert.True(t, ResultWin.Valid())
	assert.True(t, ResultLoss.Valid())
	assert.False(t, Result("draw").Valid())
	assert.False(t, Result("").Valid())
}
