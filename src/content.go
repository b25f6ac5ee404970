package src

// Output filenames inside a project directory, in write order.
const (
	ArchitectureFile = "architecture.md"
	CodeFile         = "main.go"
	TestFile         = "main_test.go"
	ReadmeFile       = "README.md"
)

var outputOrder = []string{ArchitectureFile, CodeFile, TestFile, ReadmeFile}

// ProjectContent holds the four generated artifacts for a single run.
type ProjectContent struct {
	Architecture  string
	Code          string
	Tests         string
	Documentation string
}

// Minimum artifact sizes in bytes. A record that misses any one of them is
// discarded wholesale and rebuilt from the fallback templates; there is no
// per-field repair.
var minLengths = map[string]int{
	ArchitectureFile: 800,
	CodeFile:         1000,
	TestFile:         400,
	ReadmeFile:       600,
}

// Validate reports whether every artifact meets its minimum length.
func (c ProjectContent) Validate() bool {
	files := c.Files()
	for name, min := range minLengths {
		if len(files[name]) < min {
			return false
		}
	}
	return true
}

// Files maps output filenames to their artifact bodies.
func (c ProjectContent) Files() map[string]string {
	return map[string]string{
		ArchitectureFile: c.Architecture,
		CodeFile:         c.Code,
		TestFile:         c.Tests,
		ReadmeFile:       c.Documentation,
	}
}
