package freeze

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job represents one source-script-to-executable packaging unit of work.
type Job struct {
	ID         string // Unique identifier for this run of the job
	SourcePath string // Path to the source script
	BaseName   string // Filename without extension, e.g. "subsync"
}

// NewJob creates a job for the given source script.
func NewJob(sourcePath string) Job {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return Job{
		ID:         uuid.New().String(),
		SourcePath: sourcePath,
		BaseName:   base,
	}
}

// Result records the outcome of a single job.
type Result struct {
	Job      Job
	DestPath string        // Where the binary was installed (empty on failure)
	Err      error         // nil on success
	Duration time.Duration // How long the job took
}

// OK reports whether the job succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}
