// Package domain classifies C++ source folders, infers their dependencies and
// renders their Blade descriptors.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"bladegen.dev/pkg/bladegen/internal/adapter"
	"bladegen.dev/pkg/bladegen/internal/controller"
	m "bladegen.dev/pkg/bladegen/internal/model"
)

// GenerateArgs contains the arguments of one generator run.
type GenerateArgs struct {
	// Target is the directory to process, as given on the command line.
	Target string
	// Recursive also processes every directory below Target.
	Recursive bool
	// Parallel bounds how many directories are generated at once.
	Parallel int
}

// Generator writes a descriptor for each target directory.
type Generator interface {
	Generate(ctx context.Context, args GenerateArgs) ([]m.DirectoryResult, error)
}

type generator struct {
	adapter.SourceFSAdapter
	adapter.DescriptorStore
	controller.UI
	Classifier
	Inferencer

	vendorRoot m.Path
	logger     *slog.Logger
}

// NewGenerator creates a Generator from its collaborators.
func NewGenerator(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.DescriptorStore,
	ui controller.UI,
	classifier Classifier,
	inferencer Inferencer,
	vendorRoot string,
	logger *slog.Logger,
) Generator {
	if logger == nil {
		logger = slog.Default()
	}

	return &generator{
		SourceFSAdapter: fsAdapter,
		DescriptorStore: store,
		UI:              ui,
		Classifier:      classifier,
		Inferencer:      inferencer,
		vendorRoot:      normalizeDir(vendorRoot),
		logger:          logger,
	}
}

// Generate resolves the target and runs the pipeline on every directory.
// The first fatal error stops the run and is returned; results collected
// so far are returned with it.
func (g *generator) Generate(ctx context.Context, args GenerateArgs) ([]m.DirectoryResult, error) {
	rel, err := g.Rel(ctx, args.Target)
	if err != nil {
		g.logger.Error("Target outside of workspace", "target", args.Target, "root", g.Root(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrOutsideWorkspace, err)
	}

	target := normalizeDir(string(rel))
	g.logger.Info("Generating descriptors", "target", displayDir(target), "recursive", args.Recursive)
	g.DisplayStart(ctx, target, args.Recursive)

	if !g.IsDir(ctx, target) {
		g.DisplayDirectory(ctx, target)
		g.logger.Debug("Target is not a directory", "target", displayDir(target))

		results := []m.DirectoryResult{{Dir: target, Status: m.Ignored, Reason: "not a directory"}}
		g.DisplaySummary(ctx, results)

		return results, nil
	}

	var dirs []m.Path

	err = g.WalkDirs(ctx, target, args.Recursive, func(dir m.Path) error {
		dirs = append(dirs, normalizeDir(string(dir)))
		return nil
	})
	if err != nil {
		g.logger.Error("Failed to walk target", "target", displayDir(target), "error", err)
		return nil, fmt.Errorf("walk %s: %w", displayDir(target), err)
	}

	results, err := g.generateAll(ctx, dirs, args.Parallel)
	g.DisplaySummary(ctx, results)

	if err != nil {
		return results, err
	}

	g.logger.Info("Generated descriptors", "target", displayDir(target), "directories", len(results))

	return results, nil
}

func (g *generator) generateAll(ctx context.Context, dirs []m.Path, parallel int) ([]m.DirectoryResult, error) {
	results := make([]m.DirectoryResult, len(dirs))
	done := make([]bool, len(dirs))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel < 1 {
		parallel = 1
	}

	group.SetLimit(parallel)

	for i, dir := range dirs {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := g.generateDir(groupCtx, dir)
			if err != nil {
				return err
			}

			results[i] = result
			done[i] = true

			return nil
		})
	}

	err := group.Wait()

	finished := make([]m.DirectoryResult, 0, len(dirs))

	for i, result := range results {
		if done[i] {
			finished = append(finished, result)
		}
	}

	return finished, err
}

// generateDir runs classify, infer, render and write for one directory.
func (g *generator) generateDir(ctx context.Context, dir m.Path) (m.DirectoryResult, error) {
	g.DisplayDirectory(ctx, dir)

	if g.vendorRoot != "" && isWithin(dir, g.vendorRoot) {
		g.logger.Error("Cannot generate descriptor in vendored folder", "dir", displayDir(dir))
		return m.DirectoryResult{}, fmt.Errorf("%w: %s", ErrVendoredTarget, displayDir(dir))
	}

	set, err := g.Classify(ctx, dir)
	if err != nil {
		return m.DirectoryResult{}, err
	}

	if reason, skip := SkipReason(set); skip {
		return g.skip(ctx, dir, reason), nil
	}

	descriptor, err := g.buildDescriptor(ctx, set)
	if err != nil {
		return m.DirectoryResult{}, err
	}

	content, err := Render(descriptor)
	if err != nil {
		return m.DirectoryResult{}, err
	}

	if err := g.SaveDescriptor(ctx, dir, content); err != nil {
		return m.DirectoryResult{}, err
	}

	result := m.DirectoryResult{Dir: dir, Status: m.Written, Rules: descriptor.RuleCount()}
	g.DisplayDirectoryDone(ctx, result)

	return result, nil
}

func (g *generator) skip(ctx context.Context, dir m.Path, reason string) m.DirectoryResult {
	g.logger.Warn("Skipping folder", "dir", displayDir(dir), "reason", reason)

	result := m.DirectoryResult{Dir: dir, Status: m.Skipped, Reason: reason}
	g.DisplayDirectoryDone(ctx, result)

	return result
}

// buildDescriptor turns a classified directory into typed rules.
func (g *generator) buildDescriptor(ctx context.Context, set m.SourceSet) (m.Descriptor, error) {
	d := m.Descriptor{Dir: set.Dir}
	name := dirName(g.Root(), set.Dir)

	if len(set.Protos) > 0 {
		deps, err := g.ProtoDeps(ctx, set.Dir, set.Protos)
		if err != nil {
			return d, err
		}

		d.Proto = &m.ProtoLibrary{Name: name, Srcs: fileNames(set.Protos), Deps: deps}

		return d, nil
	}

	primary := primaryBinary(set.BinarySrcs)
	entryPoint := primary != ""

	libName := name
	if entryPoint {
		libName += entryPointSuffix
	}

	if len(set.Headers) > 0 {
		units := append(append([]m.Path(nil), set.Headers...), set.LibrarySrcs...)

		deps, err := g.Deps(ctx, set.Dir, units, DepOptions{})
		if err != nil {
			return d, err
		}

		d.Library = &m.CcLibrary{
			Name: libName,
			Hdrs: fileNames(set.Headers),
			Srcs: fileNames(set.LibrarySrcs),
			Deps: deps,
		}
	} else {
		d.HeaderlessSrcs = len(set.LibrarySrcs) > 0
	}

	opts := DepOptions{Executable: true, EntryPoint: entryPoint}

	for _, src := range set.TestSrcs {
		deps, err := g.Deps(ctx, set.Dir, []m.Path{src}, opts)
		if err != nil {
			return d, err
		}

		d.Tests = append(d.Tests, m.CcTest{Name: stem(src), Srcs: fileNames([]m.Path{src}), Deps: deps})
	}

	for _, src := range set.BinarySrcs {
		deps, err := g.Deps(ctx, set.Dir, []m.Path{src}, opts)
		if err != nil {
			return d, err
		}

		binary := m.CcBinary{Name: stem(src), Srcs: fileNames([]m.Path{src}), Deps: deps}
		if src == primary {
			binary.Name = name
			binary.DynamicLink = true
		}

		d.Binaries = append(d.Binaries, binary)
	}

	return d, nil
}

// primaryBinary returns the directory's entry point: the first main source
// that is not a test.
func primaryBinary(binaries []m.Path) m.Path {
	for _, src := range binaries {
		if !strings.HasSuffix(string(src), testSuffix) {
			return src
		}
	}

	return ""
}

func stem(src m.Path) string {
	return strings.TrimSuffix(fileNames([]m.Path{src})[0], sourceExt)
}
