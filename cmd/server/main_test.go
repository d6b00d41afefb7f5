package main

import (
	"context"
	"testing"
	"time"

	"github.com/ahsanfayaz52/notekeeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &config.Config{
		Port:            "0",
		LogLevel:        "error",
		LogFormat:       "json",
		SeedNotes:       true,
		ShutdownTimeout: time.Second,
	}
	assert.NoError(t, run(ctx, cfg))
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	cfg := &config.Config{Port: "0", LogLevel: "loud", LogFormat: "json"}
	assert.Error(t, run(context.Background(), cfg))
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NotNil(t, cmd.Flags().Lookup("port"))
	require.NotNil(t, cmd.Flags().Lookup("env-file"))
	assert.Equal(t, "p", cmd.Flags().Lookup("port").Shorthand)
}
