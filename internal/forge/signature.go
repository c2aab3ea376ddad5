package forge

import (
	"errors"
	"time"

	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"
)

// identitySource is one place a commit identity may come from. Sources are
// tried in order; the first that yields both a name and an email wins.
type identitySource struct {
	name   string
	lookup func() (name, email string, err error)
}

// signature resolves the author/committer identity once per forge run, from
// the repository's own config first, then the user's global config, then the
// machine-wide system config.
func (d *Driver) signature(now time.Time) (*object.Signature, error) {
	sources := []identitySource{
		{name: "repository config", lookup: d.repositoryIdentity},
		{name: "global config", lookup: scopedIdentity(gitconfig.GlobalScope)},
		{name: "system config", lookup: scopedIdentity(gitconfig.SystemScope)},
	}

	for _, src := range sources {
		name, email, err := src.lookup()
		if err != nil || name == "" || email == "" {
			continue
		}

		d.log.Debug("resolved commit identity",
			zap.String("source", src.name),
			zap.String("name", name))
		return &object.Signature{Name: name, Email: email, When: now}, nil
	}

	return nil, &ForgeError{Err: errors.New("could not determine author from repository, system, or global config")}
}

func (d *Driver) repositoryIdentity() (string, string, error) {
	cfg, err := d.repo.Config()
	if err != nil {
		return "", "", err
	}
	return cfg.User.Name, cfg.User.Email, nil
}

func scopedIdentity(scope gitconfig.Scope) func() (string, string, error) {
	return func() (string, string, error) {
		cfg, err := gitconfig.LoadConfig(scope)
		if err != nil {
			return "", "", err
		}
		return cfg.User.Name, cfg.User.Email, nil
	}
}
