package ports

// TreeWriter performs the filesystem writes the fallback strategies need.
//
//go:generate go run go.uber.org/mock/mockgen -source=fsops.go -destination=mocks/mock_fsops.go -package=mocks
type TreeWriter interface {
	// CopyTree recursively copies the directory src to dst, creating dst.
	CopyTree(src, dst string) error

	// CopyFile copies a single file, creating parent directories of dst.
	CopyFile(src, dst string) error

	// WriteFile writes content to path, creating parent directories.
	WriteFile(path, content string) error
}
