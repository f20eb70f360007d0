package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when no repository encloses the requested path.
var ErrNotRepository = errors.New("not a git repository")

// Repository summarises the working tree the browser operates on.
type Repository struct {
	Root string
	Head string
}

// Open locates the repository enclosing dir, walking up parent directories.
// An empty dir uses the process working directory.
func Open(dir string) (Repository, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Repository{}, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Repository{}, fmt.Errorf("resolve %s: %w", dir, err)
	}
	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return Repository{}, fmt.Errorf("%s: %w", abs, ErrNotRepository)
		}
		return Repository{}, fmt.Errorf("open repository at %s: %w", abs, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return Repository{}, fmt.Errorf("open worktree at %s: %w", abs, err)
	}
	info := Repository{Root: worktree.Filesystem.Root()}
	if ref, err := repo.Head(); err == nil {
		info.Head = headName(ref)
	}
	return info, nil
}

func headName(ref *plumbing.Reference) string {
	if ref == nil {
		return ""
	}
	if ref.Name().IsBranch() {
		return ref.Name().Short()
	}
	return ref.Hash().String()
}
