package project

import (
	"context"
	"fmt"
)

// The synthetic tokio crate is always injected first so async exercises
// can reference it by index.
const (
	tokioCrateIndex = 0
	tokioCrateName  = "tokio"
)

// tokioFeatureCfg lists the tokio features rust-analyzer should treat as
// enabled when indexing the injected crate.
var tokioFeatureCfg = []string{
	`feature="fs"`,
	`feature="io-util"`,
	`feature="io-std"`,
	`feature="macros"`,
	`feature="net"`,
	`feature="parking_lot"`,
	`feature="process"`,
	`feature="rt"`,
	`feature="rt-multi-thread"`,
	`feature="signal"`,
	`feature="sync"`,
	`feature="time"`,
}

// Generate runs the whole pipeline: sysroot resolution, synthetic crate
// injection, scan, classification, and dependency validation. It returns
// the assembled document plus any advisory notes from the content check;
// writing the document is the caller's final step. The document is only
// returned once the full scan has completed without error.
func Generate(ctx context.Context, opts Options) (*Project, []string, error) {
	sysroot, err := ResolveSysrootSrc(ctx)
	if err != nil {
		return nil, nil, err
	}

	doc := &Project{
		SysrootSrc: sysroot,
		Crates:     []Crate{tokioCrate(opts)},
	}

	paths, err := ScanExercises(opts.ProjectRoot, opts.ExercisesGlob)
	if err != nil {
		return nil, nil, err
	}

	isAsync := PrefixAsyncPredicate(opts.AsyncPrefix)
	for _, p := range paths {
		if c := ClassifyPath(p, opts.Edition, isAsync); c != nil {
			doc.Crates = append(doc.Crates, *c)
		}
	}

	if err := validateDeps(doc); err != nil {
		return nil, nil, err
	}

	var notes []string
	if opts.CheckContent {
		notes = CheckAsyncTagging(opts.ProjectRoot, doc.Crates[1:])
	}
	return doc, notes, nil
}

// tokioCrate is the synthetic compilation unit representing the injected
// async runtime. It has no dependencies of its own.
func tokioCrate(opts Options) Crate {
	return Crate{
		RootModule: TokioRootModule(opts),
		Edition:    opts.Edition,
		Deps:       []Dep{},
		Cfg:        append([]string(nil), tokioFeatureCfg...),
	}
}

// validateDeps confirms every dependency reference resolves inside the
// document before it reaches the serializer.
func validateDeps(doc *Project) error {
	for _, c := range doc.Crates {
		for _, d := range c.Deps {
			if d.Crate < 0 || d.Crate >= len(doc.Crates) {
				return fmt.Errorf("crate %s: dep %q index %d out of range (%d crates)",
					c.RootModule, d.Name, d.Crate, len(doc.Crates))
			}
		}
	}
	return nil
}
