package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDirPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/home/user/bot", "home--user--bot"},
		{"C:\\exports\\bot", "C----exports--bot"},
		{"/tmp/my bot*", "tmp--my-bot"},
		{"...", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeDirPath(tt.input))
		})
	}
}

func TestDirLock_ExclusiveUntilUnlocked(t *testing.T) {
	dir := t.TempDir()

	first, err := NewDirLock(dir)
	require.NoError(t, err)
	second, err := NewDirLock(dir)
	require.NoError(t, err)
	assert.Equal(t, first.GetLockPath(), second.GetLockPath())
	assert.False(t, strings.HasPrefix(first.GetLockPath(), dir))

	require.NoError(t, first.TryLock())
	err = second.TryLock()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "another export")

	require.NoError(t, first.Unlock())
	_, statErr := os.Stat(first.GetLockPath())
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, second.TryLock())
	require.NoError(t, second.Unlock())
}

func TestDirLock_RelativePathResolves(t *testing.T) {
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	cwd, err := os.Getwd()
	require.NoError(t, err)

	relative, err := NewDirLock("out")
	require.NoError(t, err)
	absolute, err := NewDirLock(filepath.Join(cwd, "out"))
	require.NoError(t, err)

	assert.Equal(t, absolute.GetLockPath(), relative.GetLockPath())
}
