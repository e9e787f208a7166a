package sparse_test

import (
	"testing"

	"github.com/katalvlaran/ratings/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := sparse.DecodeConfig(map[string]any{
		"rows":             "3",
		"cols":             4,
		"merge_policy":     "overwrite",
		"validate_nan_inf": false,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, "overwrite", cfg.MergePolicy)
	require.NotNil(t, cfg.ValidateNaNInf)
	assert.False(t, *cfg.ValidateNaNInf)
}

func TestDecodeConfigRejects(t *testing.T) {
	cases := map[string]map[string]any{
		"unknown key":     {"rows": 1, "colz": 2},
		"negative rows":   {"rows": -1, "cols": 2},
		"unknown policy":  {"rows": 1, "cols": 1, "merge_policy": "replace"},
		"not a number":    {"rows": "many"},
		"negative column": {"cols": -5},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sparse.DecodeConfig(raw)
			assert.ErrorIs(t, err, sparse.ErrBadConfig)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	m, err := sparse.NewFromConfig[int](sparse.Config{Rows: 2, Cols: 2, MergePolicy: "overwrite"})
	require.NoError(t, err)
	assert.Equal(t, sparse.MergeOverwrite, m.MergePolicy())

	// extra options win over config-derived ones
	m, err = sparse.NewFromConfig[int](sparse.Config{Rows: 1, Cols: 1, MergePolicy: "overwrite"},
		sparse.WithMergePolicy(sparse.MergeAdd))
	require.NoError(t, err)
	assert.Equal(t, sparse.MergeAdd, m.MergePolicy())

	lax := false
	f, err := sparse.NewFromConfig[float64](sparse.Config{Rows: 1, Cols: 1, ValidateNaNInf: &lax})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Rows())

	_, err = sparse.NewFromConfig[int](sparse.Config{Rows: -1})
	assert.ErrorIs(t, err, sparse.ErrBadConfig)
}
