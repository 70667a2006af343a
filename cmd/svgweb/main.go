package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/svgweb"
)

// OutputDir is the directory, relative to the working directory, that optimized files are written to.
const OutputDir = "optimized"

// Loggers.
var (
	Error = charmlog.New(io.Discard)
	Info  = charmlog.New(io.Discard)
)

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var inputs []string

	f := argp.New("svgweb optimizes SVG files for the web: fills are set to currentColor, editor metadata is removed and the markup is minified")
	f.AddRest(&inputs, "inputs", "Input files, leave blank to use all *.svg files in the working directory")
	f.Parse()

	Error = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level: charmlog.ErrorLevel,
	})
	Info = charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		Level: charmlog.InfoLevel,
	})

	if wd, err := os.Getwd(); err == nil {
		Info.Info("working directory", "dir", wd)
	}
	return optimizeAll(afero.NewOsFs(), svgweb.New(), inputs, OutputDir)
}

// optimizeAll optimizes every input and writes the results to outputDir. A file that fails is logged
// and skipped, only failing to create the output directory ends the run early.
func optimizeAll(fsys afero.Fs, o *svgweb.Optimizer, inputs []string, outputDir string) int {
	tasks, err := createTasks(fsys, inputs, outputDir)
	if err != nil {
		Error.Error("cannot find input files", "err", err)
		return 1
	}

	if err := fsys.MkdirAll(outputDir, 0777); err != nil {
		Error.Error("cannot create output directory", "err", svgweb.NewError(svgweb.OutputDirError, outputDir, err))
		return 1
	}
	Info.Info("output directory", "dir", outputDir)

	if len(tasks) == 0 {
		Info.Info("no SVG files to optimize")
	}
	for _, task := range tasks {
		Info.Info("input", "file", task.src)
	}

	fails := 0
	start := time.Now()
	for _, task := range tasks {
		Info.Info("processing", "file", task.src)
		if err := optimize(fsys, o, task); err != nil {
			Error.Error("cannot optimize", "file", task.src, "err", err)
			fails++
		}
	}
	Info.Info("finished", "files", len(tasks), "failed", fails, "duration", time.Since(start))
	return 0
}

// optimize reads, optimizes and writes a single file. The output is written only when the optimization succeeded.
func optimize(fsys afero.Fs, o *svgweb.Optimizer, t Task) error {
	b, err := afero.ReadFile(fsys, t.src)
	if err != nil {
		return svgweb.NewError(svgweb.ReadError, t.src, err)
	}

	w := bytes.NewBuffer(make([]byte, 0, len(b)))
	startTime := time.Now()
	if err := o.Optimize(w, bytes.NewReader(b)); err != nil {
		var serr *svgweb.Error
		if errors.As(err, &serr) && serr.Path == "" {
			serr.Path = t.src
		}
		return err
	}
	dur := time.Since(startTime)

	if err := afero.WriteFile(fsys, t.dst, w.Bytes(), 0666); err != nil {
		return svgweb.NewError(svgweb.WriteError, t.dst, err)
	}

	rLen, wLen := len(b), w.Len()
	ratio := 1.0
	if 0 < rLen {
		ratio = float64(wLen) / float64(rLen)
	}
	stats := fmt.Sprintf("(%9v, %6v, %6v, %5.1f%%)", dur, humanize.Bytes(uint64(rLen)), humanize.Bytes(uint64(wLen)), ratio*100)
	Info.Info(stats, "file", t.src, "to", t.dst)
	return nil
}

// Task is an optimization task from a source file to a destination file.
type Task struct {
	src string
	dst string
}

// NewTask returns a new Task that writes to the base name of input inside outputDir.
func NewTask(input, outputDir string) Task {
	return Task{input, filepath.Join(outputDir, filepath.Base(input))}
}
