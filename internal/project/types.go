package project

// Project mirrors the rust-project.json document consumed by rust-analyzer
// for non-Cargo projects.
type Project struct {
	SysrootSrc string  `json:"sysroot_src"`
	Crates     []Crate `json:"crates"`
}

// Crate describes one standalone exercise file as an independent
// compilation unit with its own settings.
type Crate struct {
	RootModule string   `json:"root_module"`
	Edition    string   `json:"edition"`
	Deps       []Dep    `json:"deps"`
	Cfg        []string `json:"cfg"`
}

// Dep points at another crate in the document by its position in Crates.
type Dep struct {
	Crate int    `json:"crate"`
	Name  string `json:"name"`
}

// Options configures one generation run.
type Options struct {
	ProjectRoot   string // directory containing the exercises tree
	ExercisesGlob string // doublestar pattern, relative to ProjectRoot
	OutputPath    string // output file, relative to ProjectRoot
	Edition       string // language edition stamped on every crate
	TokioVersion  string // pinned version used for the registry path
	RegistryIndex string // pinned registry-index directory name
	AsyncPrefix   string // path prefix marking the async exercises subtree
	CheckContent  bool   // advisory parse of discovered files
}

const (
	defaultExercisesGlob = "exercises/**/*"
	defaultOutputPath    = "rust-project.json"
	defaultEdition       = "2021"
	defaultTokioVersion  = "1.28.1"
	defaultRegistryIndex = "github.com-1ecc6299db9ec823"
	defaultAsyncPrefix   = "exercises/async"
)

// DefaultOptions returns the pinned defaults. Version bumps for the
// injected runtime happen here or in the config file, nowhere else.
func DefaultOptions() Options {
	return Options{
		ProjectRoot:   ".",
		ExercisesGlob: defaultExercisesGlob,
		OutputPath:    defaultOutputPath,
		Edition:       defaultEdition,
		TokioVersion:  defaultTokioVersion,
		RegistryIndex: defaultRegistryIndex,
		AsyncPrefix:   defaultAsyncPrefix,
		CheckContent:  true,
	}
}
