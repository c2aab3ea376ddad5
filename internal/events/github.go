package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

// retentionDays is the platform's event timeline limit: "Only events created
// within the past 90 days will be included in timelines." Events older than
// the window never arrive, but the cutoff is enforced here anyway so a run
// never depends on upstream trimming.
const retentionDays = 90

// eventPageSize is the page size requested from the events API.
const eventPageSize = 100

// HistoryReader retrieves a user's classified activity history.
type HistoryReader interface {
	Events(ctx context.Context, login string) ([]Event, error)
}

var _ HistoryReader = (*GitHubReader)(nil)

// GitHubReader reads a user's public event timeline through the GitHub API,
// page by page, and classifies each event for calendar weighting.
type GitHubReader struct {
	client *github.Client
	log    *zap.Logger

	// defaultBranch resolves a repository's default branch; replaceable so
	// tests never touch the network.
	defaultBranch func(ctx context.Context, owner, name string) (string, error)
	branchCache   map[string]string
}

// NewGitHubReader returns a reader backed by the given API client.
func NewGitHubReader(client *github.Client, log *zap.Logger) *GitHubReader {
	r := &GitHubReader{
		client:      client,
		log:         log,
		branchCache: make(map[string]string),
	}
	r.defaultBranch = r.lookupDefaultBranch
	return r
}

// Events retrieves the user's event timeline, newest first, bounded to the
// retention window. Paging stops as soon as a page runs past the window or
// the timeline is exhausted.
func (r *GitHubReader) Events(ctx context.Context, login string) ([]Event, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	opts := &github.ListOptions{PerPage: eventPageSize}

	var out []Event
	for {
		page, resp, err := r.client.Activity.ListEventsPerformedByUser(ctx, login, false, opts)
		if err != nil {
			return nil, fmt.Errorf("list events for %q: %w", login, err)
		}

		for _, raw := range page {
			created := raw.GetCreatedAt().Time
			if created.Before(cutoff) {
				r.log.Debug("event timeline reached retention window",
					zap.Time("cutoff", cutoff),
					zap.Int("events", len(out)))
				return out, nil
			}

			ev, err := r.convert(ctx, raw)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	r.log.Debug("event timeline exhausted", zap.Int("events", len(out)))
	return out, nil
}

// convert maps an API event to the classified Event model. Push events also
// resolve the target repository's default branch, since only default-branch
// pushes carry calendar weight.
func (r *GitHubReader) convert(ctx context.Context, raw *github.Event) (Event, error) {
	ev := Event{
		Type:      Type(raw.GetType()),
		CreatedAt: raw.GetCreatedAt().Time,
	}

	payload, err := raw.ParsePayload()
	if err != nil {
		// Event kinds with no calendar weight may carry payloads the client
		// does not model; they classify to zero regardless.
		return ev, nil
	}

	switch p := payload.(type) {
	case *github.PushEvent:
		ev.Ref = p.GetRef()
		ev.CommitCount = len(p.Commits)

		owner, name, ok := splitRepoName(raw.GetRepo().GetName())
		if !ok {
			return ev, nil
		}
		branch, err := r.cachedDefaultBranch(ctx, owner, name)
		if err != nil {
			return Event{}, err
		}
		ev.DefaultBranch = branch
	case *github.IssuesEvent:
		ev.Action = p.GetAction()
	case *github.PullRequestEvent:
		ev.Action = p.GetAction()
	case *github.PullRequestReviewEvent:
		ev.Action = p.GetAction()
	}

	return ev, nil
}

func (r *GitHubReader) cachedDefaultBranch(ctx context.Context, owner, name string) (string, error) {
	key := owner + "/" + name
	if branch, ok := r.branchCache[key]; ok {
		return branch, nil
	}

	branch, err := r.defaultBranch(ctx, owner, name)
	if err != nil {
		return "", err
	}

	r.branchCache[key] = branch
	return branch, nil
}

func (r *GitHubReader) lookupDefaultBranch(ctx context.Context, owner, name string) (string, error) {
	repo, _, err := r.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return "", fmt.Errorf("resolve default branch of %s/%s: %w", owner, name, err)
	}
	return repo.GetDefaultBranch(), nil
}

func splitRepoName(full string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(full, "/")
	return owner, name, ok && owner != "" && name != ""
}
