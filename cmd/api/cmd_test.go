package main

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRun_PingAndSeedWithMock(t *testing.T) {
	t.Setenv("DATASOURCE", "mock")
	t.Setenv("LOGLEVEL", "error")
	t.Setenv("CHARTTIMEZONE", "UTC")
	t.Setenv("DBTIMEOUT", "")
	envFile := filepath.Join(t.TempDir(), "absent.env")

	for _, cmd := range []string{"ping", "seed"} {
		if err := run(context.Background(), []string{"reclamos", "--env-file", envFile, cmd}); err != nil {
			t.Fatalf("%s failed: %v", cmd, err)
		}
	}
}

func TestRun_InvalidDataSource(t *testing.T) {
	t.Setenv("DATASOURCE", "mysql")
	t.Setenv("LOGLEVEL", "error")
	envFile := filepath.Join(t.TempDir(), "absent.env")

	if err := run(context.Background(), []string{"reclamos", "--env-file", envFile, "ping"}); err == nil {
		t.Fatal("expected configuration error")
	}
}
