package main

import (
	"path/filepath"
	"testing"

	"wordbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestRun_ReturnsErrors(t *testing.T) {
	t.Run("missing database password", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "")

		err := run("dict.txt", "", testutil.NewTestLogger())

		assert.ErrorContains(t, err, "DB_PASSWORD")
	})

	t.Run("missing dictionary file", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")

		err := run(filepath.Join(t.TempDir(), "nope.txt"), "", testutil.NewTestLogger())

		assert.ErrorContains(t, err, "failed to open dictionary")
	})
}
