package main

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Pattern matches the files that are optimized when no inputs are given.
const Pattern = "*.svg"

// createTasks returns a task per input in order. Without inputs, the files matching Pattern
// in the working directory of fsys are used in lexical order.
func createTasks(fsys afero.Fs, inputs []string, outputDir string) ([]Task, error) {
	if len(inputs) == 0 {
		var err error
		if inputs, err = doublestar.Glob(afero.NewIOFS(fsys), Pattern, doublestar.WithFilesOnly()); err != nil {
			return nil, err
		}
	}

	tasks := make([]Task, 0, len(inputs))
	for _, input := range inputs {
		tasks = append(tasks, NewTask(input, outputDir))
	}
	return tasks, nil
}
