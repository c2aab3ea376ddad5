// Package events measures a user's real calendar activity and converts it
// into commit-count boundaries for the forged pattern.
//
// The platform only counts certain event kinds toward the contribution
// calendar; see
// https://docs.github.com/en/account-and-profile/setting-up-and-managing-your-github-profile/managing-contribution-graphs-on-your-profile/viewing-contributions-on-your-profile#what-counts-as-a-contribution
package events

import (
	"strings"
	"time"
)

// Type names a GitHub activity event kind. Values follow
// https://docs.github.com/en/developers/webhooks-and-events/events/github-event-types
type Type string

const (
	TypeCommitComment            Type = "CommitCommentEvent"
	TypeCreate                   Type = "CreateEvent"
	TypeDelete                   Type = "DeleteEvent"
	TypeFork                     Type = "ForkEvent"
	TypeGollum                   Type = "GollumEvent"
	TypeIssueComment             Type = "IssueCommentEvent"
	TypeIssues                   Type = "IssuesEvent"
	TypeMember                   Type = "MemberEvent"
	TypePublic                   Type = "PublicEvent"
	TypePullRequest              Type = "PullRequestEvent"
	TypePullRequestReview        Type = "PullRequestReviewEvent"
	TypePullRequestReviewComment Type = "PullRequestReviewCommentEvent"
	TypePush                     Type = "PushEvent"
	TypeRelease                  Type = "ReleaseEvent"
	TypeSponsorship              Type = "SponsorshipEvent"
	TypeWatch                    Type = "WatchEvent"
)

// Event is one classified activity event, already decoupled from the API
// client's payload types.
type Event struct {
	Type      Type
	CreatedAt time.Time

	// Action is the payload action for issue/PR/review events ("opened",
	// "created", ...).
	Action string

	// Ref and CommitCount describe push events: the full target ref and the
	// number of commits the push carried.
	Ref         string
	CommitCount int

	// DefaultBranch is the default branch of the repository the event
	// targeted; pushes only count when they land there.
	DefaultBranch string
}

// CalendarWeight returns how many points the event contributes to its day's
// contribution total. Most event kinds contribute nothing.
func CalendarWeight(ev Event) int {
	switch ev.Type {
	case TypeFork:
		return 1
	case TypePush:
		if branchFromRef(ev.Ref) == ev.DefaultBranch {
			return ev.CommitCount
		}
	case TypeIssues, TypePullRequest:
		if ev.Action == "opened" {
			return 1
		}
	case TypePullRequestReview:
		if ev.Action == "created" {
			return 1
		}
	}

	return 0
}

func branchFromRef(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// MaxPerDay returns the calendar date with the highest summed calendar
// weight and that weight. An empty or weightless history yields a zero date
// and zero count, which derives an all-zero boundary table.
func MaxPerDay(evs []Event) (time.Time, int) {
	perDay := make(map[time.Time]int)
	for _, ev := range evs {
		day := time.Date(ev.CreatedAt.Year(), ev.CreatedAt.Month(), ev.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
		perDay[day] += CalendarWeight(ev)
	}

	var (
		maxDay   time.Time
		maxCount int
	)
	for day, count := range perDay {
		if count > maxCount || (count == maxCount && count > 0 && day.Before(maxDay)) {
			maxDay = day
			maxCount = count
		}
	}

	return maxDay, maxCount
}

// Boundaries maps each abstract level 0..4 to the commit count that
// represents it. Entry 0 is always 0 and entries never decrease.
type Boundaries [5]int

// DeriveBoundaries builds the boundary table from the user's observed daily
// maximum.
//
// Without dilution the step is a quarter of the maximum, so the darkest
// forged level lands near the user's real peak and blends in. With dilution
// the step is the full maximum: even level-1 forged days match the user's
// best real day, pushing genuine activity into the lightest visual bucket.
func DeriveBoundaries(maxPerDay int, dilute bool) Boundaries {
	step := maxPerDay / 4
	if dilute {
		step = maxPerDay
	}

	var b Boundaries
	for i := 1; i < len(b); i++ {
		b[i] = i * step
	}
	return b
}
