// Package forge owns the repository end of the pipeline: acquiring a
// working copy, fabricating backdated commits from a count map, pushing
// them, and cleaning up.
//
// A Driver moves through one lifecycle: acquired by NewDriver, mutated by
// Forge and Push, released by Close. It assumes exclusive ownership of its
// working copy for that whole span; nothing here is safe for concurrent
// use, and each commit depends on the one before it anyway.
package forge

import (
	"context"
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

// AcquireMode selects how the driver obtains its working copy. Exactly one
// of OpenLocal, CloneRemote, or CreateRemote is passed to NewDriver.
type AcquireMode interface {
	acquire(ctx context.Context, d *Driver) error
}

// OpenLocal opens (or initializes) an existing local path. Working copies
// acquired this way are never deleted by Close.
type OpenLocal struct {
	Path string
}

// CloneRemote clones an upstream URL into a local path.
type CloneRemote struct {
	Path string
	URL  string
	Auth transport.AuthMethod
}

// CreateRemote creates a repository under the authenticated user, then
// clones it into a directory named after it. With ReplaceExisting set, a
// name collision deletes the old repository and creates a fresh one.
type CreateRemote struct {
	Name            string
	Client          *github.Client
	Private         bool
	ReplaceExisting bool
	Auth            transport.AuthMethod
}

// Driver drives a single repository through acquisition, forging, pushing,
// and teardown.
type Driver struct {
	repo *git.Repository
	path string
	log  *zap.Logger

	// cloned marks a working copy the driver itself created on disk, the
	// only kind Close may delete.
	cloned  bool
	cleanup bool
	failed  bool
}

// NewDriver acquires a working copy according to mode. When cleanup is set,
// a successfully processed cloned working copy is deleted by Close;
// pre-existing local paths and failed runs are always kept.
func NewDriver(ctx context.Context, mode AcquireMode, cleanup bool, log *zap.Logger) (*Driver, error) {
	d := &Driver{cleanup: cleanup, log: log}
	if err := mode.acquire(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (m OpenLocal) acquire(_ context.Context, d *Driver) error {
	repo, err := git.PlainOpen(m.Path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(m.Path, false)
	}
	if err != nil {
		return &InitError{Err: fmt.Errorf("could not initialize repository at %q: %w", m.Path, err)}
	}

	d.repo = repo
	d.path = m.Path
	d.log.Debug("opened local repository", zap.String("path", m.Path))
	return nil
}

func (m CloneRemote) acquire(ctx context.Context, d *Driver) error {
	repo, err := git.PlainCloneContext(ctx, m.Path, false, &git.CloneOptions{
		URL:  m.URL,
		Auth: m.Auth,
	})
	if err != nil {
		return &InitError{Err: fmt.Errorf("could not clone %q into %q: %w", m.URL, m.Path, err)}
	}

	d.repo = repo
	d.path = m.Path
	d.cloned = true
	d.log.Debug("cloned repository", zap.String("url", m.URL), zap.String("path", m.Path))
	return nil
}

func (m CreateRemote) acquire(ctx context.Context, d *Driver) error {
	remote, err := createRemoteRepository(ctx, m.Client, m.Name, m.Private, m.ReplaceExisting)
	if err != nil {
		return err
	}

	d.log.Debug("created remote repository", zap.String("url", remote.GetSSHURL()))
	return CloneRemote{Path: m.Name, URL: remote.GetSSHURL(), Auth: m.Auth}.acquire(ctx, d)
}

// fail records that the driver's lifecycle hit an error, which pins the
// working copy on disk for inspection, and passes the error through.
func (d *Driver) fail(err error) error {
	d.failed = true
	return err
}

// Path returns the working copy's location on disk.
func (d *Driver) Path() string {
	return d.path
}

// Close releases the driver. The working copy is deleted only when the
// driver cloned or created it, cleanup was requested, and no error occurred
// during the driver's lifetime; user-owned paths and failed runs are left
// untouched.
func (d *Driver) Close() error {
	if d.repo == nil {
		return nil
	}
	d.repo = nil

	if !d.cleanup || !d.cloned || d.failed || d.path == "" {
		return nil
	}

	d.log.Debug("removing cloned working copy", zap.String("path", d.path))
	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("remove working copy %q: %w", d.path, err)
	}
	return nil
}
