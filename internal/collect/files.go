package collect

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/mrdocs/mrdocs/internal/errors"
)

// File is one entry of the manifest handed to the renderer.
// It is either copied from SourcePath or generated from Content.
type File struct {
	URI        string `json:"uri"`
	SourcePath string `json:"source,omitempty"`
	EditURL    string `json:"edit_url,omitempty"`
	Component  string `json:"component"`
	Content    []byte `json:"-"`
	Generated  bool   `json:"generated,omitempty"`
	Index      bool   `json:"index,omitempty"`
}

// Files is an ordered manifest.
type Files []*File

// URIs returns the site paths in manifest order.
func (files Files) URIs() []string {
	uris := make([]string, 0, len(files))

	for _, file := range files {
		uris = append(uris, file.URI)
	}

	return uris
}

// Find returns the file with the given site path, or nil.
func (files Files) Find(uri string) *File {
	idx := slices.IndexFunc(files, func(file *File) bool { return file.URI == uri })
	if idx < 0 {
		return nil
	}

	return files[idx]
}

// Read returns the file content.
func (file *File) Read() ([]byte, error) {
	if file.Generated {
		return file.Content, nil
	}

	content, err := os.ReadFile(file.SourcePath)
	if err != nil {
		return nil, errors.New(err)
	}

	return content, nil
}

// Stage writes the file under dir at its site path.
func (file *File) Stage(dir string) error {
	content, err := file.Read()
	if err != nil {
		return err
	}

	dst := filepath.Join(dir, filepath.FromSlash(file.URI))

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return errors.New(err)
	}

	if err := os.WriteFile(dst, content, 0o644); err != nil {
		return errors.New(err)
	}

	return nil
}
