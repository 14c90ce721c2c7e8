package common

import (
	"path"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// PathRoot returns the first element of an import path.
func PathRoot(pkgPath string) string {
	root, _, _ := strings.Cut(pkgPath, "/")

	return root
}

// IsStdlib reports whether pkgPath looks like a standard library path, the
// way goimports decides it: no dot in the first element.
func IsStdlib(pkgPath string) bool {
	return pkgPath != "" && !strings.Contains(PathRoot(pkgPath), ".")
}
