// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package history reads earlier versions of model files kept in a git
// repository.
package history

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ErrNoGit is returned when the file is not inside a git repository.
var ErrNoGit = errors.New("not a git repository")

// ErrNotTracked is returned when the file does not exist at a revision.
var ErrNotTracked = errors.New("file not in revision")

// Revision is one commit that changed a file.
type Revision struct {
	Hash    string // Abbreviated commit hash
	When    time.Time
	Author  string
	Subject string // First line of the commit message
}

// Repo wraps the go-git repository that holds a model file.
type Repo struct {
	repo *gogit.Repository
	root string
}

// Open finds the repository containing path, searching parent directories.
func Open(path string) (*Repo, error) {
	abs, err := resolve(path)
	if err != nil {
		return nil, err
	}
	r, err := gogit.PlainOpenWithOptions(filepath.Dir(abs), &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	root, err := resolve(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}
	return &Repo{repo: r, root: root}, nil
}

// FileAt returns the content of path at revision rev ("HEAD", "HEAD~2",
// a branch, tag or hash).
func (r *Repo) FileAt(rev, path string) ([]byte, error) {
	rel, err := r.relative(path)
	if err != nil {
		return nil, err
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("getting commit: %w", err)
	}

	f, err := commit.File(rel)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, fmt.Errorf("%w: %s at %s", ErrNotTracked, rel, rev)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}
	content, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}
	return []byte(content), nil
}

// Revisions returns the commits that changed path, newest first. A limit
// of zero returns all of them.
func (r *Repo) Revisions(path string, limit int) ([]Revision, error) {
	rel, err := r.relative(path)
	if err != nil {
		return nil, err
	}
	iter, err := r.repo.Log(&gogit.LogOptions{FileName: &rel})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	var out []Revision
	err = iter.ForEach(func(c *object.Commit) error {
		subject, _, _ := strings.Cut(c.Message, "\n")
		out = append(out, Revision{
			Hash:    c.Hash.String()[:7],
			When:    c.Author.When,
			Author:  c.Author.Name,
			Subject: subject,
		})
		if limit > 0 && len(out) == limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking log of %s: %w", rel, err)
	}
	return out, nil
}

// IsModified reports whether path differs from the last commit.
func (r *Repo) IsModified(path string) (bool, error) {
	rel, err := r.relative(path)
	if err != nil {
		return false, err
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}
	s, ok := status[rel]
	if !ok {
		return false, nil
	}
	return s.Worktree != gogit.Unmodified || s.Staging != gogit.Unmodified, nil
}

// relative returns path relative to the repository root in slash form.
func (r *Repo) relative(path string) (string, error) {
	abs, err := resolve(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository %s", path, r.root)
	}
	return filepath.ToSlash(rel), nil
}

// resolve returns the absolute path with symlinks in its directory
// resolved. The file itself need not exist.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs, nil
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
