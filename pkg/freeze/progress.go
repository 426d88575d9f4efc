package freeze

import "time"

// Stage represents an installer pipeline stage.
type Stage string

const (
	StageDiscovering Stage = "discovering"
	StagePackaging   Stage = "packaging"
	StageInstalling  Stage = "installing"
	StageCleanup     Stage = "cleanup"
	StageComplete    Stage = "complete"
	StageError       Stage = "error"
)

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageDiscovering:
		return "Discovering"
	case StagePackaging:
		return "Packaging"
	case StageInstalling:
		return "Installing"
	case StageCleanup:
		return "Cleaning Up"
	case StageComplete:
		return "Complete"
	case StageError:
		return "Error"
	default:
		return string(s)
	}
}

// ProgressEvent represents an installer progress update.
type ProgressEvent struct {
	Stage     Stage
	Job       Job
	Message   string
	IsError   bool
	Timestamp time.Time
}

// ProgressCallback is called with progress updates during a run.
type ProgressCallback func(ProgressEvent)

// NoOpProgress is a progress callback that does nothing.
func NoOpProgress(_ ProgressEvent) {}

func newEvent(stage Stage, job Job, message string) ProgressEvent {
	return ProgressEvent{
		Stage:     stage,
		Job:       job,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func newErrorEvent(job Job, message string) ProgressEvent {
	return ProgressEvent{
		Stage:     StageError,
		Job:       job,
		Message:   message,
		IsError:   true,
		Timestamp: time.Now(),
	}
}
