package domain

import "errors"

// Fatal conditions. Any of them aborts the whole run.
var (
	// ErrAmbiguousVendorHeader means a quoted include matched several vendored files.
	ErrAmbiguousVendorHeader = errors.New("ambiguous vendored header")
	// ErrMissingProtoImport means an imported proto file does not exist.
	ErrMissingProtoImport = errors.New("imported proto file does not exist")
	// ErrVendoredTarget means a descriptor was requested for vendored code.
	ErrVendoredTarget = errors.New("cannot generate descriptor for vendored code")
	// ErrOutsideWorkspace means the target directory is not inside the workspace.
	ErrOutsideWorkspace = errors.New("target is outside of the workspace")
)
