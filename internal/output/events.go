package output

import "time"

type Event interface {
	LogEvent | WarningEvent | StatusEvent | ProgressEvent | LogLineEvent | ErrorEvent | ResultEvent
}

type Sink interface {
	// using any as the type only here; at call sites we'll have type safety from the union interface
	emit(event any)
}

type SinkFunc func(event any)

func (f SinkFunc) emit(event any) {
	if f == nil {
		return
	}
	f(event)
}

type LogEvent struct {
	Message string
}

type WarningEvent struct {
	Message string
}

// Job phases reported through StatusEvent.
const (
	PhasePreparing = "preparing"
	PhasePulling   = "pulling"
	PhaseStarting  = "starting"
	PhaseRunning   = "running"
	PhaseExited    = "exited"
)

type StatusEvent struct {
	Phase  string
	Job    string
	Detail string // optional extra info (e.g., container ID)
}

type ProgressEvent struct {
	Job     string
	LayerID string
	Status  string
	Current int64
	Total   int64
}

// Output streams of a job.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

type LogLineEvent struct {
	Stream string
	Line   string
}

type ErrorEvent struct {
	Title   string
	Summary string
	Detail  string
}

type ResultEvent struct {
	Job      string
	ExitCode int
	Lines    int
	Duration time.Duration
}

// Emit sends an event to the sink with compile-time type safety via generics.
func Emit[E Event](sink Sink, event E) {
	if sink == nil {
		return
	}
	sink.emit(event)
}

func EmitLog(sink Sink, message string) {
	Emit(sink, LogEvent{Message: message})
}

func EmitWarning(sink Sink, message string) {
	Emit(sink, WarningEvent{Message: message})
}

func EmitStatus(sink Sink, phase, job, detail string) {
	Emit(sink, StatusEvent{Phase: phase, Job: job, Detail: detail})
}

func EmitProgress(sink Sink, job, layerID, status string, current, total int64) {
	Emit(sink, ProgressEvent{
		Job:     job,
		LayerID: layerID,
		Status:  status,
		Current: current,
		Total:   total,
	})
}

func EmitLogLine(sink Sink, stream, line string) {
	Emit(sink, LogLineEvent{Stream: stream, Line: line})
}

func EmitError(sink Sink, event ErrorEvent) {
	Emit(sink, event)
}

func EmitResult(sink Sink, event ResultEvent) {
	Emit(sink, event)
}
