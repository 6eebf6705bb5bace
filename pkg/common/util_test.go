package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvInt(t *testing.T) {
	t.Setenv(EnvKeySimSteps, "")
	v, err := EnvInt(EnvKeySimSteps, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, v)

	t.Setenv(EnvKeySimSteps, " 48 ")
	v, err = EnvInt(EnvKeySimSteps, 24)
	require.NoError(t, err)
	assert.Equal(t, 48, v)

	t.Setenv(EnvKeySimSteps, "many")
	_, err = EnvInt(EnvKeySimSteps, 24)
	assert.ErrorContains(t, err, "SIM_STEPS")
}

func TestEnvFloat(t *testing.T) {
	t.Setenv(EnvKeySimStepRate, "")
	v, err := EnvFloat(EnvKeySimStepRate, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	t.Setenv(EnvKeySimStepRate, "2.5")
	v, err = EnvFloat(EnvKeySimStepRate, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	t.Setenv(EnvKeySimStepRate, "fast")
	_, err = EnvFloat(EnvKeySimStepRate, 0)
	assert.Error(t, err)
}

func TestMapperReducer(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := Reducer(doubled, func(acc float64, i int) float64 { return acc + float64(i) }, 0.5)
	assert.Equal(t, 12.5, sum)

	assert.Empty(t, Mapper([]int{}, func(i int) int { return i }))
}
