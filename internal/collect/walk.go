package collect

import (
	"os"
	"path/filepath"

	"github.com/mrdocs/mrdocs/internal/errors"
)

// walk returns every regular file under root in lexicographic order.
// Symlinks are followed; a directory reached twice through links is walked once.
func walk(root string) ([]string, error) {
	var (
		files   []string
		visited = make(map[string]struct{})
	)

	var visit func(dir string) error

	visit = func(dir string) error {
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return errors.New(err)
		}

		if _, ok := visited[resolved]; ok {
			return nil
		}

		visited[resolved] = struct{}{}

		// os.ReadDir returns entries sorted by file name.
		entries, err := os.ReadDir(dir)
		if err != nil {
			return errors.New(err)
		}

		for _, entry := range entries {
			p := filepath.Join(dir, entry.Name())

			info, err := os.Stat(p)
			if err != nil {
				// dangling symlink
				continue
			}

			if info.IsDir() {
				if err := visit(p); err != nil {
					return err
				}

				continue
			}

			files = append(files, p)
		}

		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}

	return files, nil
}
