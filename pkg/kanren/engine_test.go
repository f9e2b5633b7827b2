package kanren

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)
	require.NotNil(t, e)

	v1 := e.Fresh("x")
	v2 := e.Fresh("x")
	require.False(t, v1.Equal(v2), "each Fresh call must mint a distinct variable")
}

func TestNewEngineRejectsNegativeMaxAnswers(t *testing.T) {
	_, err := NewEngine(WithConfig(EngineConfig{MaxAnswers: -1}))
	require.Error(t, err)
}

func TestEngineConfigValidateAggregatesErrors(t *testing.T) {
	err := EngineConfig{MaxAnswers: -5}.Validate()
	require.Error(t, err)
}

func TestEngineWithIDGen(t *testing.T) {
	gen := NewCounterGen("eng")
	e, err := NewEngine(WithIDGen(gen))
	require.NoError(t, err)

	v := e.Fresh("x")
	require.Contains(t, v.ID(), "eng")
}

func TestEngineRun(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	out := e.Run(1, []string{"x"}, func(vs []Var) Goal {
		return Disj(Eq(vs[0], NewNum(1)), Eq(vs[0], NewNum(2)))
	})
	require.Len(t, out, 1)
	require.True(t, out[0].Equal(NewTuple(NewNum(1))))
}

func TestEngineRunAllUnbounded(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	out := e.RunAll([]string{"x"}, func(vs []Var) Goal {
		return Disj(Eq(vs[0], NewNum(1)), Eq(vs[0], NewNum(2)))
	})
	require.Len(t, out, 2)
}

func TestEngineRunAllRespectsMaxAnswersCap(t *testing.T) {
	e, err := NewEngine(WithConfig(EngineConfig{MaxAnswers: 1}))
	require.NoError(t, err)

	out := e.RunAll([]string{"x"}, func(vs []Var) Goal {
		return Disj(Eq(vs[0], NewNum(1)), Eq(vs[0], NewNum(2)))
	})
	require.Len(t, out, 1, "MaxAnswers must cap RunAll even though the underlying goal has more answers")
}
