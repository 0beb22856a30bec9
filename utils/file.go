package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ResolveFile returns the path of the given file relative to the root
// of the codebase. For example, if this file currently
// lives in utils/file.go and ./foo/bar/baz is given, then the result
// is foo/bar/baz. This is helpful when you don't want to relatively
// refer to files when you're not sure where the caller actually
// lives in relation to the target file.
func ResolveFile(fn string) string {
	//nolint:dogsled
	_, thisFilePath, _, _ := runtime.Caller(0)
	thisDirPath, err := filepath.Abs(filepath.Dir(thisFilePath))
	if err != nil {
		panic(err)
	}
	return filepath.Join(thisDirPath, "..", fn)
}

// ResolvePathFrom resolves path against the directory holding the file at from, expanding a
// leading "~" to the home directory. Absolute paths are returned cleaned but otherwise unchanged.
func ResolvePathFrom(from, path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) || from == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(filepath.Dir(from), path)
}
