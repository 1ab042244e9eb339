package staticmaps

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"farmstead/internal/app/ports"
)

//go:embed maps/*.txt
var builtin embed.FS

var ErrInvalidMapPath = errors.New("invalid map filepath")

// Provider serves map files from Root, or the built-in maps when Root is
// empty.
type Provider struct {
	Root string
}

func (p Provider) Map(_ context.Context, name string) ([]byte, error) {
	if p.Root == "" {
		if err := checkName(name); err != nil {
			return nil, err
		}
		b, err := builtin.ReadFile("maps/" + name)
		return b, notFound(err)
	}
	safePath, err := secureJoin(p.Root, name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(safePath)
	return b, notFound(err)
}

func (p Provider) List(_ context.Context) ([]string, error) {
	var (
		entries []fs.DirEntry
		err     error
	)
	if p.Root == "" {
		entries, err = builtin.ReadDir("maps")
	} else {
		entries, err = os.ReadDir(p.Root)
	}
	if err != nil {
		return nil, notFound(err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

func notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ports.ErrNotFound
	}
	return err
}

func checkName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return ErrInvalidMapPath
	}
	return nil
}

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" || filepath.IsAbs(rel) {
		return "", ErrInvalidMapPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	if !strings.HasPrefix(target, rootAbs+string(filepath.Separator)) {
		return "", ErrInvalidMapPath
	}
	return target, nil
}
