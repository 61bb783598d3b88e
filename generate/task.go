package generate

import (
	"github.com/poiesic/contratoqa/core"
)

// TaskKind distinguishes generation work from the shutdown signal.
type TaskKind int

const (
	// TaskGenerate carries a contract to generate questions for.
	TaskGenerate TaskKind = iota + 1
	// TaskStop tells a worker to exit. It carries no payload.
	TaskStop
)

// Task is one unit of queue work.
type Task struct {
	Kind    TaskKind
	Base    string // slug of the contract object, the stable part of pair IDs
	Objeto  string
	Valor   string
	Version int
}

// NewTask builds a generation task from a contract record.
func NewTask(record *core.ContractRecord) Task {
	return Task{
		Kind:    TaskGenerate,
		Base:    core.Slug(record.Objeto),
		Objeto:  record.Objeto,
		Valor:   record.Valor,
		Version: record.VersionIndex,
	}
}

func stopTask() Task {
	return Task{Kind: TaskStop}
}
