package persona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/models"
)

func TestGetReadsBundleFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coder.md"), []byte("# Coder\nShip small diffs."), 0644))

	s := NewStore(dir)
	got, err := s.Get(models.RoleCoder)
	require.NoError(t, err)
	assert.Contains(t, got, "Ship small diffs.")
}

func TestGetFallsBackWhenFileMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	got, err := s.Get(models.RoleQA)
	require.NoError(t, err)
	assert.Contains(t, got, "qa agent")
}

func TestGetRejectsUnknownRole(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Get(models.Role("wizard"))
	assert.Error(t, err)
}

func TestGetCachesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pm.md")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	s := NewStore(dir)
	got, err := s.Get(models.RolePM)
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	// Within the TTL the cached copy is served.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0644))
	got, err = s.Get(models.RolePM)
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}
