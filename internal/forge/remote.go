package forge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v66/github"
)

const generatedDescription = "This repository holds generated contribution calendar activity."

// collisionMessage is the API's error message for a duplicate repository
// name under the same account.
const collisionMessage = "name already exists on this account"

// createRemoteRepository creates a repository under the authenticated user.
// On a name collision with replace set, the existing repository is deleted
// and a fresh one created; without replace the collision is an InitError.
func createRemoteRepository(ctx context.Context, client *github.Client, name string, private, replace bool) (*github.Repository, error) {
	created, _, err := client.Repositories.Create(ctx, "", newRepositorySpec(name, private))
	if err == nil {
		return created, nil
	}

	if !isNameCollision(err) || !replace {
		return nil, &InitError{Err: fmt.Errorf("could not create new repository %q: %w", name, err)}
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, &InitError{Err: fmt.Errorf("could not resolve owner of pre-existing repository %q: %w", name, err)}
	}
	if _, err := client.Repositories.Delete(ctx, user.GetLogin(), name); err != nil {
		return nil, &InitError{Err: fmt.Errorf("could not delete pre-existing repository %q: %w", name, err)}
	}

	created, _, err = client.Repositories.Create(ctx, "", newRepositorySpec(name, private))
	if err != nil {
		return nil, &InitError{Err: fmt.Errorf("could not create new repository %q: %w", name, err)}
	}
	return created, nil
}

func newRepositorySpec(name string, private bool) *github.Repository {
	return &github.Repository{
		Name:         github.String(name),
		Description:  github.String(generatedDescription),
		Private:      github.Bool(private),
		HasIssues:    github.Bool(false),
		HasWiki:      github.Bool(false),
		HasDownloads: github.Bool(false),
		HasProjects:  github.Bool(false),
		AutoInit:     github.Bool(false),
	}
}

func isNameCollision(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}

	for _, e := range ghErr.Errors {
		if e.Message == collisionMessage {
			return true
		}
	}
	return false
}
