// Package index loads generated QA pairs from the JSON-lines log into a
// vector store, embedding each pair's combined text in batches with retry.
//
// Two store implementations are provided: a Chroma-backed indexer that hands
// embedding and storage off to a Chroma server, and a local indexer that
// embeds explicitly and persists entries in the BadgerDB-backed repository.
// Indexing the same log twice is idempotent for the local store, since
// entries are keyed by pair ID.
package index
