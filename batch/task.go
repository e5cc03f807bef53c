// Package batch provides the non-interactive driver that turns CLI and file
// input into an ordered sequence of download tasks and executes them.
package batch

import (
	"fmt"
	"strings"

	"github.com/tunegrab-cli/tunegrab/filesystem"
)

// TaskKind discriminates how a task value must be interpreted.
type TaskKind int

const (
	// TaskSearch is a free-text term resolved through a search session.
	TaskSearch TaskKind = iota
	// TaskLocator is a direct, already-absolute locator.
	TaskLocator
)

// Task is one unit of work for the runner.
type Task struct {
	Kind  TaskKind
	Value string
}

func (t Task) String() string {
	return t.Value
}

// classify maps a raw input line to its task kind.
func classify(value string) Task {
	if strings.HasPrefix(value, "http") {
		return Task{Kind: TaskLocator, Value: value}
	}
	return Task{Kind: TaskSearch, Value: value}
}

// GatherTasks builds the ordered task list from positional arguments, an
// optional input file (one task per line, blank lines and '#' comments
// ignored) and repeated search terms.
func GatherTasks(args []string, file string, searches []string) ([]Task, error) {
	var tasks []Task

	for _, arg := range args {
		tasks = append(tasks, classify(arg))
	}

	if file != "" {
		content, err := filesystem.API().ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read task file %s: %w", file, err)
		}
		for _, line := range strings.Split(string(content), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			tasks = append(tasks, classify(line))
		}
	}

	for _, term := range searches {
		tasks = append(tasks, Task{Kind: TaskSearch, Value: term})
	}

	return tasks, nil
}
