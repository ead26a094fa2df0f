package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/golf-stats/cmd/app"
	"github.com/Badsnus/golf-stats/internal/adapters/config"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{
		Settings: config.Settings{Timezone: "UTC"},
		Service: config.Service{
			Database: config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "golf.db")},
		},
		Handicap: config.Handicap{Window: 20, Best: 8, Factor: 1},
		Web:      config.Web{Addr: ":0", Locale: "en"},
	}
	require.NoError(t, cfg.Validate())

	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func showOutput(t *testing.T, a *app.App) summary {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), a, options{show: true}, &out))

	var s summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	return s
}

func TestSampleRunTwiceKeepsOneCopy(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)

	var out bytes.Buffer
	require.NoError(t, run(ctx, a, options{sample: true}, &out))
	assert.Contains(t, out.String(), "Inserted sample data.")

	out.Reset()
	require.NoError(t, run(ctx, a, options{sample: true}, &out))
	assert.NotContains(t, out.String(), "Inserted sample data.")

	s := showOutput(t, a)
	require.Len(t, s.Members, 2)
	assert.Equal(t, "Alice", s.Members[0].FirstName)
	require.Len(t, s.RecentRounds, 1)
	assert.Equal(t, "Alice Smith", s.RecentRounds[0].Player)
	assert.Equal(t, 88, *s.RecentRounds[0].TotalStrokes)
}

func TestForceRecreatesSchema(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)

	require.NoError(t, run(ctx, a, options{sample: true}, &bytes.Buffer{}))
	require.NoError(t, run(ctx, a, options{init: true, force: true}, &bytes.Buffer{}))

	s := showOutput(t, a)
	assert.Empty(t, s.Members)
	assert.Empty(t, s.RecentRounds)

	require.NoError(t, run(ctx, a, options{force: true, sample: true}, &bytes.Buffer{}))
	assert.Len(t, showOutput(t, a).Members, 2)
}

func TestShowWithoutSchemaFails(t *testing.T) {
	a := newApp(t)
	assert.Error(t, run(context.Background(), a, options{show: true}, &bytes.Buffer{}))
}

func TestNoActionPrintsHelp(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "--sample")
}
