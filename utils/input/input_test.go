package input

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/lifesim-oss/utils/config"
	"gopkg.in/yaml.v2"
)

func TestInitFromFile(t *testing.T) {
	c, err := Init(context.Background(), "../../config.example.yml", "", "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestInitFromData(t *testing.T) {
	out, err := yaml.Marshal(config.Default())
	require.NoError(t, err)
	data := base64.StdEncoding.EncodeToString(out)

	c, err := Init(context.Background(), "", data, "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestInitErrors(t *testing.T) {
	_, err := Init(context.Background(), "", "", "")
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = Init(context.Background(), "", "not base64!", "")
	assert.Error(t, err)

	_, err = Init(context.Background(), filepath.Join(t.TempDir(), "missing.yml"), "", "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := base64.StdEncoding.EncodeToString([]byte("control:\n  unknown: 1\n"))
	_, err = Init(context.Background(), "", bad, "")
	assert.Error(t, err)
}

func TestLoadScenarioIncompleteInput(t *testing.T) {
	_, err := LoadScenario(context.Background(), config.InputPath{URI: "mongodb://localhost:27017", DB: "lifesim"}, "")
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestLoadScenarioFromCache(t *testing.T) {
	dir := t.TempDir()
	p := config.InputPath{DB: "lifesim", Col: "scenarios", Name: "default", OnlyCache: true}

	_, err := LoadScenario(context.Background(), p, dir)
	assert.ErrorIs(t, err, ErrScenarioNotCached)

	want := config.Default().Scenario
	require.NoError(t, writeCache(filepath.Join(dir, p.GetCachePath()), want))
	got, err := LoadScenario(context.Background(), p, dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInitOverridesScenarioFromInput(t *testing.T) {
	dir := t.TempDir()
	p := config.InputPath{DB: "lifesim", Col: "scenarios", Name: "frugal", OnlyCache: true}
	want := config.Default().Scenario
	want.Income.Starting = 50000
	require.NoError(t, writeCache(filepath.Join(dir, p.GetCachePath()), want))

	c := config.Default()
	c.Input = &p
	c.Scenario = config.Scenario{}
	out, err := yaml.Marshal(c)
	require.NoError(t, err)

	got, err := Init(context.Background(), "", base64.StdEncoding.EncodeToString(out), dir)
	require.NoError(t, err)
	assert.Equal(t, want, got.Scenario)
	assert.Equal(t, 2025, got.Control.StartYear)
}

func TestPreCheckCache(t *testing.T) {
	assert.False(t, preCheckCache(""))
	assert.True(t, preCheckCache(t.TempDir()))
	assert.False(t, preCheckCache(filepath.Join(t.TempDir(), "missing")))
}
