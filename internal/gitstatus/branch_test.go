package gitstatus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranch(t *testing.T) {
	dir := initGitRepo(t)

	name, ok, err := Branch(dir)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "main", name)
}

func TestBranch_FromSubdirectory(t *testing.T) {
	dir := initGitRepo(t)
	writeFile(t, dir, "a/b/c.txt", "x")
	run(t, dir, "git", "checkout", "-b", "feature/nested")

	name, ok, err := Branch(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "feature/nested", name)
}

func TestBranch_Detached(t *testing.T) {
	dir := initGitRepo(t)
	run(t, dir, "git", "checkout", "--detach")

	name, ok, err := Branch(dir)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, DetachedHead, name)
}

func TestBranch_Unborn(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	run(t, dir, "git", "init", "-b", "trunk")

	name, ok, err := Branch(dir)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "trunk", name)
}

func TestBranch_NotARepository(t *testing.T) {
	name, ok, err := Branch(t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, name)
}
