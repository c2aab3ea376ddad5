package forge

import (
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"

	"forgehub/internal/render"
)

// markerFile is the single tracked file every forged commit rewrites; its
// contents are unique per (date, index), so no commit is ever empty.
const markerFile = "repr.txt"

const dateLayout = "2006.01.02"

// Forge fabricates the commits described by counts: for every date, exactly
// counts[date] distinct commits, each individually backdated to that date.
// The loop is strictly sequential since each commit parents the previous
// one. Any failure aborts the remaining work; commits already created are
// kept, never rolled back.
func (d *Driver) Forge(counts render.CountMap) error {
	sig, err := d.signature(time.Now())
	if err != nil {
		return d.fail(err)
	}

	wt, err := d.repo.Worktree()
	if err != nil {
		return d.fail(&ForgeError{Err: err})
	}

	d.log.Info("forging commits",
		zap.Int("days", len(counts)),
		zap.Int("commits", counts.Total()))

	for _, date := range counts.Dates() {
		for i := 1; i <= counts[date]; i++ {
			if err := d.forgeOne(wt, sig, date, i); err != nil {
				return d.fail(err)
			}
		}
	}

	return nil
}

func (d *Driver) forgeOne(wt *git.Worktree, sig *object.Signature, date time.Time, index int) error {
	message := fmt.Sprintf("commit #%d for %s", index, date.Format(dateLayout))

	if err := util.WriteFile(wt.Filesystem, markerFile, []byte(message), 0o644); err != nil {
		return &ForgeError{Err: fmt.Errorf("write %s: %w", markerFile, err)}
	}
	if _, err := wt.Add(markerFile); err != nil {
		return &ForgeError{Err: fmt.Errorf("stage %s: %w", markerFile, err)}
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return &ForgeError{Err: err}
	}

	if _, err := d.redate(hash, date); err != nil {
		return err
	}
	return nil
}

// redate rewrites the commit's authored and committed timestamps to the
// target date and repoints the branch at the rewritten object.
//
// The object store is content addressed, so the rewrite is a deliberate
// two-phase protocol: re-encode the commit with the new timestamps, store
// the result, and move the branch tip onto it. The placeholder-time commit
// becomes unreferenced; the branch still gains exactly one commit.
func (d *Driver) redate(hash plumbing.Hash, when time.Time) (plumbing.Hash, error) {
	commit, err := d.repo.CommitObject(hash)
	if err != nil {
		return plumbing.ZeroHash, &ForgeError{Err: fmt.Errorf("read commit %s: %w", hash, err)}
	}

	commit.Author.When = when
	commit.Committer.When = when

	obj := d.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, &ForgeError{Err: fmt.Errorf("encode rewritten commit: %w", err)}
	}

	rewritten, err := d.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, &ForgeError{Err: fmt.Errorf("store rewritten commit: %w", err)}
	}

	head, err := d.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, &ForgeError{Err: fmt.Errorf("resolve head: %w", err)}
	}
	if err := d.repo.Storer.SetReference(plumbing.NewHashReference(head.Name(), rewritten)); err != nil {
		return plumbing.ZeroHash, &ForgeError{Err: fmt.Errorf("update %s: %w", head.Name(), err)}
	}

	return rewritten, nil
}
