package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/go-git/go-git/v6/storage/filesystem/dotgit"

	"github.com/mrdocs/mrdocs/internal/errors"
)

// Repository is a local repository opened with go-git.
type Repository struct {
	repo    *git.Repository
	storage *filesystem.Storage
	dir     string
}

// Open opens the repository whose worktree root is dir. Linked worktrees and
// submodules, where .git is a file pointing at the git directory, are supported.
func Open(dir string) (*Repository, error) {
	dot, err := dotGitFilesystem(dir)
	if err != nil {
		return nil, err
	}

	wt := osfs.New(dir)

	s := filesystem.NewStorageWithOptions(dot, cache.NewObjectLRUDefault(), filesystem.Options{KeepDescriptors: true})

	repo, err := git.Open(s, wt)
	if err != nil {
		s.Close()

		return nil, &WrappedError{Op: "git_open", Context: err.Error(), Err: ErrNotRepo}
	}

	return &Repository{repo: repo, storage: s, dir: dir}, nil
}

// dotGitFilesystem returns the git directory of the worktree at dir.
func dotGitFilesystem(dir string) (billy.Filesystem, error) {
	dotPath := filepath.Join(dir, git.GitDirName)

	info, err := os.Stat(dotPath)
	if err != nil {
		return nil, &WrappedError{Op: "git_open", Context: dir, Err: ErrNotRepo}
	}

	if info.IsDir() {
		return osfs.New(dotPath), nil
	}

	data, err := os.ReadFile(dotPath)
	if err != nil {
		return nil, errors.New(err)
	}

	gitDir, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir:")
	if !ok {
		return nil, &WrappedError{Op: "git_open", Context: dotPath + ": missing gitdir", Err: ErrNotRepo}
	}

	gitDir = resolveRelative(dir, strings.TrimSpace(gitDir))

	// Linked worktrees keep objects and refs in the main repository, named by commondir.
	common, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if os.IsNotExist(err) {
		return osfs.New(gitDir), nil
	}

	if err != nil {
		return nil, errors.New(err)
	}

	commonDir := resolveRelative(gitDir, strings.TrimSpace(string(common)))

	return dotgit.NewRepositoryFilesystem(osfs.New(gitDir), osfs.New(commonDir)), nil
}

func resolveRelative(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(base, path)
}

// Close releases the file descriptors held by the storage.
func (r *Repository) Close() error {
	return r.storage.Close()
}

// Dir returns the worktree root.
func (r *Repository) Dir() string {
	return r.dir
}

// Head describes the checked out revision.
type Head struct {
	// Revision is the full commit hash.
	Revision string
	// Branch is empty when HEAD is detached.
	Branch string
}

// Head returns the revision and branch HEAD points at.
func (r *Repository) Head() (*Head, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, errors.New(err)
	}

	head := &Head{Revision: ref.Hash().String()}

	if ref.Name().IsBranch() {
		head.Branch = ref.Name().Short()
	}

	return head, nil
}

// IsDirty reports whether tracked files have uncommitted changes.
// Untracked files do not count.
func (r *Repository) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, errors.New(err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, errors.New(err)
	}

	for _, file := range status {
		if file.Staging == git.Untracked && file.Worktree == git.Untracked {
			continue
		}

		if file.Staging != git.Unmodified || file.Worktree != git.Unmodified {
			return true, nil
		}
	}

	return false, nil
}

// Remotes returns the names of the configured remotes.
func (r *Repository) Remotes() ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, errors.New(err)
	}

	names := make([]string, 0, len(remotes))

	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}

	return names, nil
}

// ReadFile returns the content of the slash-separated path at the given revision,
// e.g. a branch name or `origin/docs-data`.
func (r *Repository) ReadFile(rev, path string) ([]byte, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &WrappedError{Op: "git_read_file", Context: rev + ": " + err.Error(), Err: ErrReadFile}
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, &WrappedError{Op: "git_read_file", Context: rev + ": " + err.Error(), Err: ErrReadFile}
	}

	file, err := commit.File(path)
	if err != nil {
		return nil, &WrappedError{Op: "git_read_file", Context: rev + ":" + path + ": " + err.Error(), Err: ErrReadFile}
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, errors.New(err)
	}

	return []byte(contents), nil
}
