package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/google/go-github/v66/github"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"forgehub/internal/config"
	"forgehub/internal/events"
	"forgehub/internal/forge"
	"forgehub/internal/render"
)

var (
	writeDilute      bool
	writeNoPush      bool
	writeNoClean     bool
	writeCreate      bool
	writeReplace     bool
	writeRepoPrivate bool

	writeUser       string
	writePrivateKey string
	writePublicKey  string
	writeToken      string
	writeTokenFile  string
	writeImport     string
	writeRemote     string
	writeRefSpecs   []string
)

var writeCmd = &cobra.Command{
	Use:   "write TEXT REPO",
	Short: "Render text, forge the matching commits, and push them",
	Long: `Renders TEXT onto the contribution calendar, derives commit-count
boundaries from the target user's real activity, then forges and pushes
the backdated commits into REPO.

REPO is a local repository path, an upstream URL to clone, or with
--create the name of a repository to create under the authenticated
user.`,
	Args: cobra.ExactArgs(2),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().BoolVarP(&writeDilute, "dilute", "d", false,
		"inflate boundaries so existing activity fades next to the forged pattern")
	writeCmd.Flags().StringVar(&writeUser, "user", "",
		"target user; defaults to the token's user or the git config github.user")
	writeCmd.Flags().StringVar(&writePrivateKey, "private", "",
		"private ssh key for git transport (default ~/.ssh/id_rsa)")
	writeCmd.Flags().StringVar(&writePublicKey, "public", "",
		"public ssh key for git transport (default ~/.ssh/id_rsa.pub)")
	writeCmd.Flags().StringVarP(&writeToken, "token", "t", "", "github access token")
	writeCmd.Flags().StringVarP(&writeTokenFile, "token-file", "f", "", "read the github access token from this file")
	writeCmd.MarkFlagsMutuallyExclusive("token", "token-file")
	writeCmd.Flags().BoolVarP(&writeNoPush, "no-push", "n", false,
		"do not push the forged commits (implies --no-clean)")
	writeCmd.Flags().BoolVar(&writeNoClean, "no-clean", false,
		"keep cloned repositories after pushing")
	writeCmd.Flags().BoolVar(&writeCreate, "create", false,
		"treat REPO as the name of a new repository to create")
	writeCmd.Flags().BoolVar(&writeReplace, "replace", false,
		"with --create, delete and recreate a repository whose name collides")
	writeCmd.Flags().BoolVar(&writeRepoPrivate, "private-repo", false,
		"with --create, make the new repository private")
	writeCmd.Flags().StringVar(&writeImport, "import", "",
		"forge a previously dumped map from this file instead of rendering TEXT")
	writeCmd.Flags().StringVar(&writeRemote, "remote", "", "remote to push to")
	writeCmd.Flags().StringArrayVar(&writeRefSpecs, "refspec", nil, "refspec to push (repeatable)")
}

func runWrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	text, repoArg := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := cfg.ResolveToken(writeToken, writeTokenFile)
	if err != nil {
		return err
	}

	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	login, err := resolveLogin(ctx, client, writeUser, token != "")
	if err != nil {
		return err
	}

	logger.Info("rendering output", zap.String("user", login))
	levelMap, err := buildLevelMap(text)
	if err != nil {
		return err
	}

	logger.Info("retrieving user activity", zap.String("user", login))
	reader := events.NewGitHubReader(client, logger)
	evs, err := reader.Events(ctx, login)
	if err != nil {
		return err
	}

	_, maxPerDay := events.MaxPerDay(evs)
	bounds := events.DeriveBoundaries(maxPerDay, writeDilute)
	logger.Debug("derived boundaries",
		zap.Int("max_per_day", maxPerDay),
		zap.Bool("dilute", writeDilute),
		zap.Ints("boundaries", bounds[:]))

	counts := levelMap.Scale([5]int(bounds))

	auth, err := resolveAuth(cfg, repoArg)
	if err != nil {
		return err
	}

	logger.Info("initializing repository", zap.String("repo", repoArg))
	cleanup := !writeNoClean && !writeNoPush
	driver, err := forge.NewDriver(ctx, acquireMode(repoArg, client, auth), cleanup, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Warn("failed to clean up working copy", zap.Error(err))
		}
	}()

	if err := driver.Forge(counts); err != nil {
		return err
	}

	if writeNoPush {
		logger.Info("skipping push", zap.String("path", driver.Path()))
		return nil
	}

	remote := writeRemote
	if remote == "" {
		remote = cfg.Remote
	}
	refspecs := writeRefSpecs
	if len(refspecs) == 0 {
		refspecs = cfg.RefSpecs
	}

	return driver.Push(ctx, remote, refspecs, auth)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// resolveLogin determines the target user: the explicit flag, then the
// token's authenticated user, then the github.user entry of the global git
// config.
func resolveLogin(ctx context.Context, client *github.Client, explicit string, authenticated bool) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if authenticated {
		user, _, err := client.Users.Get(ctx, "")
		if err != nil {
			return "", fmt.Errorf("%w: %v", errNoIdentity, err)
		}
		return user.GetLogin(), nil
	}

	if cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil {
		if login := cfg.Raw.Section("github").Option("user"); login != "" {
			return login, nil
		}
	}

	return "", errNoIdentity
}

// buildLevelMap renders the message, or re-expands an imported dump when
// --import is given.
func buildLevelMap(text string) (*render.LevelMap, error) {
	if writeImport == "" {
		return render.RenderText(text, render.LastWeekEnd(time.Now()))
	}

	data, err := os.ReadFile(writeImport)
	if err != nil {
		return nil, fmt.Errorf("read import file %q: %w", writeImport, err)
	}

	if strings.Contains(string(data), ":") {
		return render.ParseDated(strings.NewReader(string(data)))
	}

	levels, err := render.ParseLevels(string(data))
	if err != nil {
		return nil, err
	}
	return render.RenderLevels(levels, render.LastWeekEnd(time.Now()))
}

// resolveAuth builds SSH credentials when the run needs a remote: cloning,
// creating, or pushing. A purely local, push-suppressed run needs none.
func resolveAuth(cfg *config.Config, repoArg string) (transport.AuthMethod, error) {
	if !writeCreate && writeNoPush && localPathExists(repoArg) {
		return nil, nil
	}

	private, _, err := cfg.ResolveSSHKeys(writePrivateKey, writePublicKey)
	if err != nil {
		return nil, err
	}

	auth, err := gitssh.NewPublicKeysFromFile("git", private, "")
	if err != nil {
		return nil, &forge.InitError{Err: fmt.Errorf("load ssh key %q: %w", private, err)}
	}
	return auth, nil
}

// acquireMode picks the acquisition variant for REPO: create a remote
// repository, open an existing local path, or clone an upstream URL.
func acquireMode(repoArg string, client *github.Client, auth transport.AuthMethod) forge.AcquireMode {
	switch {
	case writeCreate:
		return forge.CreateRemote{
			Name:            repoArg,
			Client:          client,
			Private:         writeRepoPrivate,
			ReplaceExisting: writeReplace,
			Auth:            auth,
		}
	case localPathExists(repoArg):
		return forge.OpenLocal{Path: repoArg}
	default:
		return forge.CloneRemote{Path: repoNameFromURL(repoArg), URL: repoArg, Auth: auth}
	}
}

func localPathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// repoNameFromURL extracts the repository name from an upstream URL, used
// as the local clone directory.
func repoNameFromURL(url string) string {
	name := url[strings.LastIndexByte(url, '/')+1:]
	return strings.TrimSuffix(name, ".git")
}
