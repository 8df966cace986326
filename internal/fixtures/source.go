package fixtures

import (
	"context"
	"embed"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var embedded embed.FS

// Source abstracts where fixture files come from: the embedded defaults, a
// local directory, or an S3 bucket.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// EmbeddedSource serves the fixture files compiled into the binary.
func EmbeddedSource() Source {
	return embeddedSource{}
}

type embeddedSource struct{}

func (embeddedSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	return embedded.ReadFile("data/" + name)
}

// DirSource serves fixture files from a local directory.
func DirSource(dir string) Source {
	return dirSource{dir: dir}
}

type dirSource struct {
	dir string
}

func (s dirSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}
