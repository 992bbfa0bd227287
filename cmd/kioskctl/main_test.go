package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFlightsCmd(t *testing.T) {
	out, err := execute(t, "flights", "--origin", "JNB", "--destination", "HDS")

	require.NoError(t, err)
	assert.Contains(t, out, "5Z 711")
	assert.Contains(t, out, "4Z 191")
	assert.Contains(t, out, "Found 2 flights")
}

func TestShareCmd(t *testing.T) {
	out, err := execute(t, "share", "--origin", "https://kiosk.example/", "kruger", "panorama")

	require.NoError(t, err)
	assert.Equal(t, "https://kiosk.example/route?ids=kruger,panorama\n", out)

	_, err = execute(t, "share", "kruger")
	assert.Error(t, err)

	_, err = execute(t, "share", "--origin", "https://kiosk.example")
	assert.Error(t, err)
}

func TestDBCheckCmd_NothingConfigured(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PGHOST"} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600))

	out, err := execute(t, "dbcheck", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "postgres: not configured")
	assert.Contains(t, out, "kafka: not configured")
}
