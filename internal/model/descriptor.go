package model

// Dep is a dependency reference as understood by the build tool:
//
//	":name"            target in the same directory
//	"sub/dir:dir"      target below the current directory
//	"//path/dir:dir"   workspace-absolute target
//	"#z"               pseudo-reference to a system library
type Dep string

// RuleKind names a descriptor rule.
type RuleKind string

const (
	// RuleProtoLibrary is a proto_library rule.
	RuleProtoLibrary RuleKind = "proto_library"
	// RuleCcLibrary is a cc_library rule.
	RuleCcLibrary RuleKind = "cc_library"
	// RuleCcTest is a cc_test rule.
	RuleCcTest RuleKind = "cc_test"
	// RuleCcBinary is a cc_binary rule.
	RuleCcBinary RuleKind = "cc_binary"
)

// ProtoLibrary describes the proto_library rule of a proto-only directory
// together with its cc_library wrapper.
type ProtoLibrary struct {
	Name string // wrapper name; the proto rule is Name + "_proto"
	Srcs []string
	Deps []Dep
}

// CcLibrary describes the library of a directory.
type CcLibrary struct {
	Name string
	Hdrs []string
	Srcs []string
	Deps []Dep
}

// CcTest describes one test source.
type CcTest struct {
	Name string
	Srcs []string
	Deps []Dep
}

// CcBinary describes one main-containing source.
type CcBinary struct {
	Name        string
	Srcs        []string
	Deps        []Dep
	DynamicLink bool
}

// Descriptor is the typed content of one BUILD file before rendering.
// Either Proto is set, or any combination of the cc rules.
type Descriptor struct {
	Dir      Path
	Proto    *ProtoLibrary
	Library  *CcLibrary
	Tests    []CcTest
	Binaries []CcBinary

	// HeaderlessSrcs is set when library sources exist but no header does.
	// No library rule is produced; the library block renders empty.
	HeaderlessSrcs bool
}

// RuleCount returns how many top-level rules the descriptor renders to.
func (d Descriptor) RuleCount() int {
	n := len(d.Tests) + len(d.Binaries)
	if d.Proto != nil {
		n += 2
	}

	if d.Library != nil {
		n++
	}

	return n
}
