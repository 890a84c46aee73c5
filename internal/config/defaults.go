package config

const (
	// DefaultHost is the loopback interface the server binds to
	DefaultHost = "127.0.0.1"
	// DefaultPort is the default listen port
	DefaultPort = 9000
	// DefaultDepsFile is the closure deps manifest produced by the build step
	DefaultDepsFile = "build/deps-runfiles.js"
	// DefaultAllTestsFile is the generated test manifest artifact
	DefaultAllTestsFile = "build/all_tests.js"
	// DefaultFallbackFile is the document served for unresolved paths
	DefaultFallbackFile = "build/index.html"
	// DefaultTestRoot is the directory tree scanned for test files
	DefaultTestRoot = "vsaq"
	// DefaultTestFilePattern matches test file basenames during discovery
	DefaultTestFilePattern = "*test_dom.html"
	// DefaultManifestVariable is the global the manifest assigns the file list to
	DefaultManifestVariable = "_allTests"
)

// DefaultDirectoryMap translates URL prefixes to source directories. Entries
// are checked in declared order and the first prefix whose mapped file exists
// on disk wins, so ordering is load-bearing: the root entry shadows every
// later entry whenever build/ contains the requested file.
var DefaultDirectoryMap = []Mapping{
	{Prefix: "/", Dir: "build/"},
	{Prefix: "/vsaq/", Dir: "vsaq/"},
	{Prefix: "/vsaq/static/questionnaire/", Dir: "vsaq/static/questionnaire/"},
	{Prefix: "/javascript/closure/", Dir: "third_party/closure-library/closure/goog/"},
	{Prefix: "/javascript/vsaq/", Dir: "vsaq/"},
	{Prefix: "/third_party/closure/", Dir: "third_party/closure-library/third_party/closure/"},
	{Prefix: "/third_party/closure-templates-compiler/", Dir: "third_party/closure-templates-compiler/"},
	{Prefix: "/build/templates/vsaq/static/questionnaire/", Dir: "build/templates/vsaq/static/questionnaire/"},
}
