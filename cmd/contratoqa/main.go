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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/contratoqa/ai"
	"github.com/poiesic/contratoqa/ai/openai"
	"github.com/poiesic/contratoqa/corpus"
	"github.com/poiesic/contratoqa/generate"
	"github.com/poiesic/contratoqa/index"
	"github.com/poiesic/contratoqa/search"
	"github.com/poiesic/contratoqa/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "contratoqa",
		Usage: "QA corpus synthesis from public contract extracts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "prepare",
				Usage:  "Normalize contract extracts from a dataset dump into a deduplicated CSV",
				Action: prepareCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the dataset JSON dump",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output CSV path",
						Value:   "contratos.csv",
					},
					&cli.StringFlag{
						Name:  "doc-type",
						Usage: "Document type to extract from the dataset",
						Value: corpus.DefaultDocType,
					},
				},
			},
			{
				Name:   "generate",
				Usage:  "Generate question paraphrases for each contract via an LLM",
				Action: generateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the prepared contracts CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output JSONL path (appended to on resume)",
						Value:   "qa_pairs.jsonl",
					},
					&cli.IntFlag{
						Name:    "n-paraphrases",
						Aliases: []string{"k"},
						Usage:   "Number of distinct questions requested per contract",
						Value:   3,
					},
					&cli.IntFlag{
						Name:    "concurrency",
						Aliases: []string{"c"},
						Usage:   "Number of concurrent generation workers",
						Value:   8,
					},
					&cli.StringFlag{
						Name:    "generator-host",
						Usage:   "Generation service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"LLAMA_URL"},
					},
					&cli.StringFlag{
						Name:    "generator-model",
						Usage:   "Generation model name",
						Value:   "llama4",
						EnvVars: []string{"MODEL_NAME"},
					},
					&cli.Float64Flag{
						Name:  "temperature",
						Usage: "Sampling temperature for generation",
						Value: 0.5,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts per completion request",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for linear backoff",
						Value: 3 * time.Second,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N contracts",
						Value: 10,
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Embed generated QA pairs and load them into a vector store",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "pairs",
						Usage: "Path to the generated QA pairs JSONL",
						Value: "qa_pairs.jsonl",
					},
					&cli.StringFlag{
						Name:  "store",
						Usage: "Vector store backend (chroma or local)",
						Value: "chroma",
					},
					&cli.StringFlag{
						Name:    "chroma-url",
						Usage:   "Chroma server URL (store=chroma)",
						Value:   "http://localhost:8000",
						EnvVars: []string{"CHROMA_URL"},
					},
					&cli.StringFlag{
						Name:  "collection",
						Usage: "Chroma collection name (store=chroma)",
						Value: "contratos_qa",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the local BadgerDB index (store=local)",
						Value:   "./qa_db",
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"LLAMA_URL"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						Value:   "embeddinggemma",
						EnvVars: []string{"EMBEDDING_MODEL"},
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of pairs to embed and store per batch",
						Value: 32,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts per batch",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 2 * time.Second,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N pairs",
						Value: 50,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the local QA index",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the local BadgerDB index",
						Value:   "./qa_db",
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"LLAMA_URL"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						Value:   "embeddinggemma",
						EnvVars: []string{"EMBEDDING_MODEL"},
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results",
						Value: 5,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func prepareCommand(c *cli.Context) error {
	dataset, err := corpus.LoadDataset(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	entries, err := dataset.Entries(c.String("doc-type"))
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	records := corpus.BuildRecords(entries)
	if err := corpus.WriteRecordsFile(c.String("out"), records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d records from %d entries to %s\n",
		len(records), len(entries), c.String("out"))
	return nil
}

func generateCommand(c *cli.Context) error {
	ctx := context.Background()

	records, err := corpus.ReadRecordsFile(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to read contracts CSV: %w", err)
	}

	outPath := c.String("out")
	ledger, err := generate.LoadLedger(outPath)
	if err != nil {
		return fmt.Errorf("failed to load resume ledger: %w", err)
	}

	writer, err := generate.OpenPairWriter(outPath)
	if err != nil {
		return fmt.Errorf("failed to open output log: %w", err)
	}
	defer writer.Close()

	aiConfig := ai.NewConfig(
		ai.WithGeneratorHost(c.String("generator-host")),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithTemperature(c.Float64("temperature")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	generator, err := openai.NewGenerator(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	genConfig := &generate.Config{
		Paraphrases:    c.Int("n-paraphrases"),
		Concurrency:    c.Int("concurrency"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		ReportInterval: c.Int("report-interval"),
	}
	if genConfig.Paraphrases <= 0 {
		return fmt.Errorf("n-paraphrases must be greater than 0")
	}
	if genConfig.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be greater than 0")
	}
	if genConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	pipeline, err := generate.NewPipeline(generator, ledger, writer, genConfig)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Contracts: %d\n", len(records))
	fmt.Fprintf(os.Stderr, "Generator host: %s\n", aiConfig.GeneratorHost)
	fmt.Fprintf(os.Stderr, "Generator model: %s\n", aiConfig.GeneratorModel)
	fmt.Fprintln(os.Stderr)

	if err := pipeline.Run(ctx, records); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	pairs, err := index.ReadPairs(c.String("pairs"))
	if err != nil {
		return fmt.Errorf("failed to read pairs: %w", err)
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no valid pairs in %s", c.String("pairs"))
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	indexConfig := &index.Config{
		BatchSize:      c.Int("batch-size"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		ReportInterval: c.Int("report-interval"),
	}
	if indexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if indexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	var indexer index.Indexer
	switch c.String("store") {
	case "chroma":
		client, err := openai.NewEmbeddingClient(aiConfig)
		if err != nil {
			return fmt.Errorf("failed to create embedding client: %w", err)
		}
		indexer, err = index.NewChromaIndexer(c.String("chroma-url"), c.String("collection"), client, indexConfig)
		if err != nil {
			return err
		}
	case "local":
		backend, err := badger.OpenBackend(c.String("db"), false)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer backend.Close()

		repo, err := badger.NewQARepository(backend)
		if err != nil {
			return fmt.Errorf("failed to create repository: %w", err)
		}
		defer repo.Close()

		embedder, err := openai.NewEmbedder(aiConfig)
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		indexer, err = index.NewLocalIndexer(repo, embedder, indexConfig)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown store %q: must be chroma or local", c.String("store"))
	}

	fmt.Fprintf(os.Stderr, "Pairs: %d\n", len(pairs))
	fmt.Fprintf(os.Stderr, "Store: %s\n", c.String("store"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", aiConfig.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", aiConfig.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	indexed, err := indexer.Index(ctx, pairs)
	if err != nil {
		return fmt.Errorf("indexing failed after %d pairs: %w", indexed, err)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewQARepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	searcher, err := search.NewSearcher(repo, embedder)
	if err != nil {
		return err
	}

	results, err := searcher.FindSimilar(ctx, query, c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %q -> %s (%s)[%0.3f]\n", i, hit.Entry.Question, hit.Entry.Answer, hit.Entry.ID, hit.Score)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
