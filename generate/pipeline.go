// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package generate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/contratoqa/ai"
	"github.com/poiesic/contratoqa/core"
	"github.com/poiesic/contratoqa/progress"
)

// Config holds tuning parameters for the generation pipeline.
type Config struct {
	// Paraphrases is the number of distinct questions requested per contract.
	Paraphrases int

	// Concurrency is the worker pool size.
	Concurrency int

	// MaxRetries is the attempt budget per completion request.
	MaxRetries int

	// RetryDelay is the base backoff; attempt n sleeps n × RetryDelay.
	RetryDelay time.Duration

	// ReportInterval controls how often progress is printed, in tasks.
	ReportInterval int
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() *Config {
	return &Config{
		Paraphrases:    3,
		Concurrency:    8,
		MaxRetries:     3,
		RetryDelay:     3 * time.Second,
		ReportInterval: 10,
	}
}

// Pipeline drains a bounded queue of contract tasks through a fixed worker
// pool, writing generated pairs to a shared JSON-lines log. Task failures are
// logged and dropped; the done marker is recorded either way so reruns never
// repeat an attempted contract.
type Pipeline struct {
	generator ai.Generator
	ledger    *Ledger
	writer    *PairWriter
	pool      *ants.Pool
	config    *Config
	progressW io.Writer
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithProgressWriter sets where progress output goes. Defaults to stderr.
func WithProgressWriter(w io.Writer) Option {
	return func(p *Pipeline) {
		p.progressW = w
	}
}

// NewPipeline creates a generation pipeline. config may be nil, in which case
// defaults are used. The caller retains ownership of writer and must close it
// after Run returns.
func NewPipeline(generator ai.Generator, ledger *Ledger, writer *PairWriter, config *Config, opts ...Option) (*Pipeline, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if ledger == nil {
		return nil, ErrLedgerRequired
	}
	if writer == nil {
		return nil, ErrWriterRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	pool, err := ants.NewPool(config.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	p := &Pipeline{
		generator: generator,
		ledger:    ledger,
		writer:    writer,
		pool:      pool,
		config:    config,
		progressW: os.Stderr,
		logger:    slog.Default().With("component", "generate"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run enqueues one task per record, waits for the queue to drain, then shuts
// the workers down with one stop task each. The queue is buffered to hold
// every task, so enqueueing never blocks on slow workers.
func (p *Pipeline) Run(ctx context.Context, records []*core.ContractRecord) error {
	tasks := make(chan Task, len(records)+p.config.Concurrency)

	tracker := progress.NewTracker(p.progressW, len(records), p.config.ReportInterval)
	tracker.Start()

	var pending sync.WaitGroup
	var workers sync.WaitGroup
	started := 0
	for i := 0; i < p.config.Concurrency; i++ {
		workers.Add(1)
		err := p.pool.Submit(func() {
			defer workers.Done()
			p.worker(ctx, tasks, &pending, tracker)
		})
		if err != nil {
			workers.Done()
			for j := 0; j < started; j++ {
				tasks <- stopTask()
			}
			workers.Wait()
			return fmt.Errorf("failed to start worker: %w", err)
		}
		started++
	}

	for _, record := range records {
		pending.Add(1)
		tasks <- NewTask(record)
	}
	pending.Wait()

	for i := 0; i < started; i++ {
		tasks <- stopTask()
	}
	workers.Wait()

	tracker.Finish()
	p.logger.Info("generation pass complete",
		"records", len(records),
		"done_markers", p.ledger.Len(),
		"elapsed", tracker.Elapsed().Round(time.Millisecond))
	return ctx.Err()
}

// Release shuts down the worker pool. The pipeline must not be used after.
func (p *Pipeline) Release() {
	p.pool.Release()
}

// worker consumes tasks until it receives a stop task.
func (p *Pipeline) worker(ctx context.Context, tasks <-chan Task, pending *sync.WaitGroup, tracker *progress.Tracker) {
	for task := range tasks {
		if task.Kind == TaskStop {
			return
		}
		p.process(ctx, task)
		tracker.Increment(1)
		pending.Done()
	}
}

// process handles one generation task end to end: resume check, completion
// with retries, parsing, and the contiguous append of the resulting pairs.
func (p *Pipeline) process(ctx context.Context, task Task) {
	marker := core.DoneMarker(task.Base)
	if p.ledger.Done(marker) {
		return
	}
	defer p.ledger.MarkDone(marker)

	var completion string
	err := RetryLinear(ctx, func(ctx context.Context) (Outcome, error) {
		text, err := p.generator.Complete(ctx, task.Objeto, task.Valor, p.config.Paraphrases)
		if err != nil {
			return ClassifyCompletionError(err), err
		}
		completion = text
		return OutcomeSuccess, nil
	}, p.config.MaxRetries, p.config.RetryDelay)
	if err != nil {
		p.logger.Error("completion failed",
			"objeto", truncateForLog(task.Objeto),
			"error", err)
		return
	}

	questions, err := ai.ParseQuestions(completion, p.config.Paraphrases)
	if err != nil {
		p.logger.Error("completion contained no questions",
			"objeto", truncateForLog(task.Objeto),
			"error", err)
		return
	}
	if len(questions) < p.config.Paraphrases {
		p.logger.Warn("model produced fewer questions than requested",
			"objeto", truncateForLog(task.Objeto),
			"got", len(questions),
			"want", p.config.Paraphrases)
	}

	pairs := make([]*core.QAPair, len(questions))
	for i, q := range questions {
		pairs[i] = &core.QAPair{
			ID:       core.PairID(task.Base, task.Version, i),
			Question: q,
			Answer:   task.Valor,
			Objeto:   task.Objeto,
			Valor:    task.Valor,
		}
	}
	if err := p.writer.AppendAll(pairs); err != nil {
		p.logger.Error("failed to append pairs",
			"objeto", truncateForLog(task.Objeto),
			"error", err)
	}
}

// truncateForLog caps object text in log lines at 60 runes.
func truncateForLog(s string) string {
	runes := []rune(s)
	if len(runes) <= 60 {
		return s
	}
	return string(runes[:60]) + "…"
}
