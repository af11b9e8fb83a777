// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NotARepo(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "glider.jsn"))
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestOpen_FindsRepoFromSubdirectory(t *testing.T) {
	dir := initTestRepo(t)
	commitFile(t, dir, "models/glider.jsn", `{"v": 1}`, "add glider")

	repo, err := Open(filepath.Join(dir, "models", "glider.jsn"))
	require.NoError(t, err)

	content, err := repo.FileAt("HEAD", filepath.Join(dir, "models", "glider.jsn"))
	require.NoError(t, err)
	assert.Equal(t, `{"v": 1}`, string(content))
}

func TestFileAt_Revisions(t *testing.T) {
	dir := initTestRepo(t)
	path := filepath.Join(dir, "glider.jsn")
	commitFile(t, dir, "glider.jsn", `{"v": 1}`, "first")
	commitFile(t, dir, "glider.jsn", `{"v": 2}`, "second")

	repo, err := Open(path)
	require.NoError(t, err)

	head, err := repo.FileAt("HEAD", path)
	require.NoError(t, err)
	assert.Equal(t, `{"v": 2}`, string(head))

	prev, err := repo.FileAt("HEAD~1", path)
	require.NoError(t, err)
	assert.Equal(t, `{"v": 1}`, string(prev))

	_, err = repo.FileAt("HEAD~2", path)
	assert.ErrorIs(t, err, ErrNotTracked)

	_, err = repo.FileAt("no-such-branch", path)
	assert.Error(t, err)
}

func TestFileAt_OutsideRepository(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(filepath.Join(dir, "README"))
	require.NoError(t, err)

	_, err = repo.FileAt("HEAD", filepath.Join(t.TempDir(), "other.jsn"))
	assert.Error(t, err)
}

func TestRevisions(t *testing.T) {
	dir := initTestRepo(t)
	path := filepath.Join(dir, "glider.jsn")
	commitFile(t, dir, "glider.jsn", `{"v": 1}`, "first\n\nbody")
	commitFile(t, dir, "other.jsn", `{}`, "unrelated")
	commitFile(t, dir, "glider.jsn", `{"v": 2}`, "second")

	repo, err := Open(path)
	require.NoError(t, err)

	revs, err := repo.Revisions(path, 0)
	require.NoError(t, err)
	require.Len(t, revs, 2)
	assert.Equal(t, "second", revs[0].Subject)
	assert.Equal(t, "first", revs[1].Subject)
	assert.Len(t, revs[0].Hash, 7)
	assert.Equal(t, "Test", revs[0].Author)

	revs, err = repo.Revisions(path, 1)
	require.NoError(t, err)
	assert.Len(t, revs, 1)
}

func TestRevisions_BrokenObjectStore(t *testing.T) {
	dir := initTestRepo(t)
	path := filepath.Join(dir, "glider.jsn")
	commitFile(t, dir, "glider.jsn", `{"v": 1}`, "first")
	commitFile(t, dir, "glider.jsn", `{"v": 2}`, "second")

	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	root, err := r.ResolveRevision(plumbing.Revision("HEAD~2"))
	require.NoError(t, err)
	hash := root.String()
	require.NoError(t, os.Remove(filepath.Join(dir, ".git", "objects", hash[:2], hash[2:])))

	repo, err := Open(path)
	require.NoError(t, err)
	revs, err := repo.Revisions(path, 0)
	assert.Error(t, err)
	assert.Nil(t, revs)

	revs, err = repo.Revisions(path, 1)
	require.NoError(t, err)
	require.Len(t, revs, 1)
	assert.Equal(t, "second", revs[0].Subject)
}

func TestIsModified(t *testing.T) {
	dir := initTestRepo(t)
	path := filepath.Join(dir, "glider.jsn")
	commitFile(t, dir, "glider.jsn", `{"v": 1}`, "first")

	repo, err := Open(path)
	require.NoError(t, err)

	modified, err := repo.IsModified(path)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, os.WriteFile(path, []byte(`{"v": 3}`), 0o644))
	modified, err = repo.IsModified(path)
	require.NoError(t, err)
	assert.True(t, modified)
}

// initTestRepo creates a repository with one committed file.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	commitFile(t, dir, "README", "models\n", "initial commit")
	return dir
}

// commitFile writes a file and commits it with the given message.
func commitFile(t *testing.T, dir, name, content, msg string) {
	t.Helper()

	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}
