// Package content holds the built-in topic pack shipped with the binary.
package content

import (
	"embed"
	"io/fs"
)

//go:embed taxonomy.yaml topics/*.md
var files embed.FS

// FS returns the embedded pack rooted at taxonomy.yaml.
func FS() fs.FS {
	return files
}
