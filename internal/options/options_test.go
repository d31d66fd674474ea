package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	precision int
	name      string
	calls     []string
}

func withPrecision(p int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if p < 0 {
			return errors.New("precision cannot be negative")
		}
		c.precision = p
		c.calls = append(c.calls, "precision")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("a"), withPrecision(4), withName("b"))
	require.NoError(t, err)
	require.Equal(t, "b", cfg.name)
	require.Equal(t, 4, cfg.precision)
	require.Equal(t, []string{"name", "precision", "name"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("a"), withPrecision(-1), withName("b"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "precision cannot be negative")
	require.Equal(t, "a", cfg.name)
	require.Equal(t, []string{"name"}, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, nil, withName("x"))
	require.NoError(t, err)
	require.Equal(t, "x", cfg.name)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{precision: 7}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.precision)
}

func TestApplyAndValidate(t *testing.T) {
	errNoName := errors.New("name required")
	validate := func(c *testConfig) error {
		if c.name == "" {
			return errNoName
		}
		return nil
	}

	t.Run("valid", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, ApplyAndValidate(cfg, validate, withName("ok")))
	})

	t.Run("validation fails", func(t *testing.T) {
		cfg := &testConfig{}
		require.ErrorIs(t, ApplyAndValidate(cfg, validate, withPrecision(3)), errNoName)
	})

	t.Run("option error wins", func(t *testing.T) {
		cfg := &testConfig{}
		err := ApplyAndValidate(cfg, validate, withPrecision(-1))
		require.Error(t, err)
		require.NotErrorIs(t, err, errNoName)
	})

	t.Run("nil validator", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, ApplyAndValidate(cfg, nil, withPrecision(1)))
	})
}
