// Package resolver maps normalized request paths onto files under a
// content root, falling back to a directory's index.html.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strings"
	"syscall"
)

const (
	// HomepageIndex is served for the root path.
	HomepageIndex = "homepage/index.html"

	indexFile = "index.html"

	htmlContentType    = "text/html; charset=utf-8"
	defaultContentType = "application/octet-stream"
)

// ErrNotFound is returned when neither the candidate nor its index.html
// fallback is a regular file.
var ErrNotFound = errors.New("file not found")

// File is an open file picked by Resolve. The caller must Close it.
type File struct {
	fs.File
	Name        string
	Info        fs.FileInfo
	ContentType string
}

type Resolver struct {
	fsys fs.FS
}

func New(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Normalize strips a single trailing slash from p unless p is "/".
func Normalize(p string) string {
	if p != "/" && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

// Candidate returns the name, relative to the content root, that a
// normalized path is looked up under first.
func (r *Resolver) Candidate(normalized string) string {
	if normalized == "/" {
		return HomepageIndex
	}
	return strings.TrimPrefix(normalized, "/")
}

// Resolve returns the file to serve for a normalized path. The error wraps
// ErrNotFound when nothing matches; any other error is an I/O failure.
func (r *Resolver) Resolve(normalized string) (*File, error) {
	name := r.Candidate(normalized)

	f, err := r.open(name, contentTypeByExt(name))
	if !errors.Is(err, ErrNotFound) {
		return f, err
	}

	f, err = r.open(name+"/"+indexFile, htmlContentType)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, normalized)
	}
	return f, err
}

// open opens name if it is a regular file. The mode is checked with Stat
// before opening so that FIFOs and devices are never opened for reading,
// and again on the open handle in case the entry was replaced in between.
func (r *Resolver) open(name, contentType string) (*File, error) {
	name = cleanName(name)
	if !fs.ValidPath(name) {
		return nil, ErrNotFound
	}

	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		if isNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	f, err := r.fsys.Open(name)
	if err != nil {
		if isNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	info, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, ErrNotFound
	}

	return &File{
		File:        f,
		Name:        name,
		Info:        info,
		ContentType: contentType,
	}, nil
}

// cleanName resolves empty and dot segments of name without letting it
// climb above the content root.
func cleanName(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return "."
	}
	return name
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrInvalid) ||
		errors.Is(err, syscall.ENOTDIR)
}

func contentTypeByExt(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return defaultContentType
}
