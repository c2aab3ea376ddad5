package forge

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"go.uber.org/zap"
)

// DefaultRefSpecs pushes the primary branch when no refspecs are
// configured.
var DefaultRefSpecs = []string{"refs/heads/main:refs/heads/main"}

// Push pushes the given refspecs to the named remote. Every refspec is
// validated before the remote is touched, so a malformed spec never costs a
// network round trip.
func (d *Driver) Push(ctx context.Context, remote string, refspecs []string, auth transport.AuthMethod) error {
	if remote == "" {
		return d.fail(&PushError{Err: errors.New("remote name required")})
	}
	if len(refspecs) == 0 {
		refspecs = DefaultRefSpecs
	}

	specs := make([]gitconfig.RefSpec, len(refspecs))
	for i, raw := range refspecs {
		spec := gitconfig.RefSpec(raw)
		if err := spec.Validate(); err != nil {
			return d.fail(&PushError{Err: fmt.Errorf("refspec %q is not valid: %w", raw, err)})
		}
		specs[i] = spec
	}

	d.log.Info("pushing to remote",
		zap.String("remote", remote),
		zap.Strings("refspecs", refspecs))

	err := d.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   specs,
		Auth:       auth,
	})
	switch {
	case err == nil, errors.Is(err, git.NoErrAlreadyUpToDate):
		return nil
	case errors.Is(err, git.ErrRemoteNotFound):
		return d.fail(&PushError{Err: fmt.Errorf("no such remote %q exists for the given repository", remote)})
	default:
		return d.fail(&PushError{Err: err})
	}
}
