package xorg_test

import (
	"testing"

	"mkxorg/internal/xorg"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfig_CreatesParentDirs(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := xorg.WriteConfig(fs, "/etc/X11/xorg.conf", "content\n")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/etc/X11/xorg.conf")
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(data))
}

func TestWriteConfig_RotatesExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/test/xorg.conf", []byte("old\n"), 0o644))

	err := xorg.WriteConfig(fs, "/tmp/test/xorg.conf", "new\n")
	require.NoError(t, err)

	bak, err := afero.ReadFile(fs, "/tmp/test/xorg.conf.bak")
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(bak))

	cur, err := afero.ReadFile(fs, "/tmp/test/xorg.conf")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(cur))
}

func TestWriteConfig_KeepsExistingBackup(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/xorg.conf", []byte("current\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/xorg.conf.bak", []byte("first\n"), 0o644))

	err := xorg.WriteConfig(fs, "/tmp/xorg.conf", "newest\n")
	require.NoError(t, err)

	// The original backup is never clobbered by later runs.
	bak, err := afero.ReadFile(fs, "/tmp/xorg.conf.bak")
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(bak))

	cur, err := afero.ReadFile(fs, "/tmp/xorg.conf")
	require.NoError(t, err)
	assert.Equal(t, "newest\n", string(cur))
}

func TestWriteConfig_NoBackupForNewFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := xorg.WriteConfig(fs, "/tmp/xorg.conf", "content\n")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/tmp/xorg.conf.bak")
	require.NoError(t, err)
	assert.False(t, exists)
}
