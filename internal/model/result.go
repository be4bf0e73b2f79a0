package model

// DirectoryStatus is the outcome of processing one directory.
type DirectoryStatus int

const (
	// Written means a descriptor file was written.
	Written DirectoryStatus = iota
	// Skipped means the directory was skipped with a warning.
	Skipped
	// Ignored means the path was not a directory.
	Ignored
)

// String implements fmt.Stringer.
func (s DirectoryStatus) String() string {
	switch s {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// DirectoryResult records what happened to one directory.
type DirectoryResult struct {
	Dir    Path
	Status DirectoryStatus
	Rules  int
	Reason string
}
