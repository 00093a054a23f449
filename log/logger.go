package log

import (
	"fmt"
	"io"
	"os"
)

// logger is a package-level trace writer, opened once per process.
// Trace lines are tagged with the pipeline stage that produced them
// (see Stage), so a single run's log interleaves cleanly even though
// every stage of the grammar pipeline writes through the same Log
// call.
type logger struct {
	out   io.WriteCloser
	stage string
}

var l *logger

func Init(outputPath string) error {
	f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}

	l = &logger{
		out: f,
	}

	return nil
}

func Close() error {
	if l == nil {
		return nil
	}

	return l.out.Close()
}

func GetWriter() io.Writer {
	if l == nil {
		return nil
	}
	return l.out
}

// Stage marks the pipeline stage (e.g. "load", "left-factor",
// "compute-first") that subsequent Log calls belong to, and writes a
// banner line announcing it. Load, LeftFactor, RemoveLeftRecursion,
// ComputeFirst, ComputeFollow, and BuildTable each call this before
// tracing their own work, so the trace file reads as a record of the
// pipeline's data flow rather than an undifferentiated stream.
func Stage(name string) {
	if l == nil {
		return
	}
	l.stage = name
	fmt.Fprintf(l.out, "=== %s ===\n", name)
}

func Log(format string, opts ...interface{}) {
	if l == nil {
		return
	}
	if l.stage != "" {
		format = "[" + l.stage + "] " + format
	}
	fmt.Fprintf(l.out, format+"\n", opts...)
}
