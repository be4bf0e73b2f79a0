package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"go.chromium.org/luci/common/data/stringset"

	"bladegen.dev/pkg/bladegen/internal/adapter"
	m "bladegen.dev/pkg/bladegen/internal/model"
)

const (
	protoHeaderSuffix = ".pb.h"
	protoTargetSuffix = "_proto"
	entryPointSuffix  = "_lib"
)

// DepOptions tunes dependency inference for one unit.
type DepOptions struct {
	// Executable is set for tests and binaries: headers of the unit's own
	// directory then become a dependency on the directory's library.
	Executable bool
	// EntryPoint is set when the directory's library carries the "_lib" suffix.
	EntryPoint bool
}

// Inferencer maps include directives to dependency references.
type Inferencer interface {
	// Deps infers the dependencies of files, which all live in unitDir.
	Deps(ctx context.Context, unitDir m.Path, files []m.Path, opts DepOptions) ([]m.Dep, error)
	// ProtoDeps infers the dependencies of the proto files of unitDir.
	ProtoDeps(ctx context.Context, unitDir m.Path, protos []m.Path) ([]m.Dep, error)
}

type inferencer struct {
	adapter.SourceFSAdapter
	rules      *Rules
	vendorRoot m.Path
	logger     *slog.Logger
}

// NewInferencer creates an Inferencer. vendorRoot is the workspace-relative
// folder holding third-party code.
func NewInferencer(fsAdapter adapter.SourceFSAdapter, rules *Rules, vendorRoot string, logger *slog.Logger) Inferencer {
	if logger == nil {
		logger = slog.Default()
	}

	return &inferencer{
		SourceFSAdapter: fsAdapter,
		rules:           rules,
		vendorRoot:      normalizeDir(vendorRoot),
		logger:          logger,
	}
}

func (in *inferencer) Deps(ctx context.Context, unitDir m.Path, files []m.Path, opts DepOptions) ([]m.Dep, error) {
	if len(files) == 0 {
		return nil, nil
	}

	edges, err := in.scan(ctx, files)
	if err != nil {
		return nil, err
	}

	deps := stringset.New(len(edges))

	for _, edge := range edges {
		var resolved []m.Dep

		switch edge.Include.Kind {
		case m.IncludeQuoted:
			resolved, err = in.resolveQuoted(ctx, unitDir, edge.Include.Path, opts)
			if err != nil {
				return nil, err
			}
		case m.IncludeSystem:
			// Other system headers are left to the toolchain.
			if dep, ok := in.rules.PseudoFor(edge.Include.Path); ok {
				resolved = []m.Dep{dep}
			}
		}

		for _, dep := range resolved {
			deps.Add(string(dep))
		}
	}

	sorted := sortedDeps(deps)
	in.logger.Debug("Inferred deps", "dir", displayDir(unitDir), "files", files, "deps", sorted)

	return sorted, nil
}

func (in *inferencer) scan(ctx context.Context, files []m.Path) ([]m.IncludeEdge, error) {
	var edges []m.IncludeEdge

	for _, file := range files {
		content, err := in.ReadFile(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		includes := ScanIncludes(content)
		in.logger.Debug("Scanned includes", "file", file, "includes", includes)

		for _, inc := range includes {
			edges = append(edges, m.IncludeEdge{Source: file, Include: inc})
		}
	}

	return edges, nil
}

// resolveQuoted applies the layered rules to one quoted include.
func (in *inferencer) resolveQuoted(ctx context.Context, unitDir m.Path, include string, opts DepOptions) ([]m.Dep, error) {
	folder := includeDir(include)
	resolvedDir := in.resolveDir(ctx, unitDir, include)

	if resolvedDir == unitDir {
		if !opts.Executable {
			return nil, nil
		}

		name := dirName(in.Root(), unitDir)
		if opts.EntryPoint {
			name += entryPointSuffix
		}

		return []m.Dep{m.Dep(":" + name)}, nil
	}

	if in.rules.IsIgnored(include) {
		return nil, nil
	}

	if dep, ok := in.rules.PseudoFor(include); ok {
		return []m.Dep{dep}, nil
	}

	if deps, ok := in.rules.AggregateFor(include); ok {
		return deps, nil
	}

	if deps, ok := in.rules.FolderFor(string(folder)); ok {
		return deps, nil
	}

	// Generated headers may be missing, so existence is checked on the folder.
	if resolvedDir == "" || !in.IsDir(ctx, resolvedDir) {
		return in.resolveVendored(ctx, include)
	}

	name := path.Base(string(resolvedDir))

	if strings.HasSuffix(include, protoHeaderSuffix) {
		return []m.Dep{absoluteDep(resolvedDir, name+protoTargetSuffix)}, nil
	}

	if isStrictDescendant(resolvedDir, unitDir) {
		rel := strings.TrimPrefix(strings.TrimPrefix(string(resolvedDir), string(unitDir)), "/")
		return []m.Dep{m.Dep(rel + ":" + name)}, nil
	}

	return []m.Dep{absoluteDep(resolvedDir, name)}, nil
}

// resolveDir finds the folder a quoted include refers to. A file next to the
// including unit wins; otherwise the include is relative to the workspace.
func (in *inferencer) resolveDir(ctx context.Context, unitDir m.Path, include string) m.Path {
	if local := joinDir(unitDir, include); in.IsFile(ctx, local) {
		return includeDir(string(local))
	}

	return includeDir(include)
}

// resolveVendored searches the vendored root for include.
func (in *inferencer) resolveVendored(ctx context.Context, include string) ([]m.Dep, error) {
	matches, err := in.Glob(ctx, path.Join(string(in.vendorRoot), "**", include))
	if err != nil {
		return nil, fmt.Errorf("search vendored header %s: %w", include, err)
	}

	var candidates []m.Path

	for _, match := range matches {
		if in.rules.VendorExcluded(in.vendorFolder(match)) {
			continue
		}

		candidates = append(candidates, match)
	}

	switch len(candidates) {
	case 0:
		in.logger.Warn("Header folder does not exist", "folder", string(includeDir(include)), "header", include)
		return nil, nil
	case 1:
		folder := in.vendorFolder(candidates[0])
		return []m.Dep{absoluteDep(joinDir(in.vendorRoot, folder), in.rules.VendorTarget(folder))}, nil
	default:
		in.logger.Error("Ambiguous vendored header", "header", include, "candidates", candidates)
		return nil, fmt.Errorf("%w %s: candidates %v", ErrAmbiguousVendorHeader, include, candidates)
	}
}

// vendorFolder returns the top-level vendored folder holding file.
func (in *inferencer) vendorFolder(file m.Path) string {
	rel := strings.TrimPrefix(string(file), string(in.vendorRoot)+"/")
	folder, _, _ := strings.Cut(rel, "/")

	return folder
}

func (in *inferencer) ProtoDeps(ctx context.Context, unitDir m.Path, protos []m.Path) ([]m.Dep, error) {
	deps := stringset.New(0)

	for _, proto := range protos {
		content, err := in.ReadFile(ctx, proto)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", proto, err)
		}

		imports := ScanProtoImports(content)
		in.logger.Debug("Scanned proto imports", "file", proto, "imports", imports)

		for _, imp := range imports {
			folder := includeDir(imp)
			if folder == unitDir {
				continue
			}

			if !in.Exists(ctx, m.Path(imp)) {
				in.logger.Error("Imported proto file does not exist", "proto", imp, "importer", proto)
				return nil, fmt.Errorf("%w: %s imported by %s", ErrMissingProtoImport, imp, proto)
			}

			name := ""
			if folder != "" {
				name = path.Base(string(folder))
			}

			deps.Add(string(absoluteDep(folder, name+protoTargetSuffix)))
		}
	}

	return sortedDeps(deps), nil
}

func sortedDeps(set stringset.Set) []m.Dep {
	values := set.ToSlice()
	sort.Strings(values)

	deps := make([]m.Dep, 0, len(values))
	for _, v := range values {
		deps = append(deps, m.Dep(v))
	}

	return deps
}
