// Package generate orchestrates the question-generation stage: a bounded
// in-memory queue of contract tasks drained by a fixed pool of concurrent
// workers, with linear-backoff retries per request, an append-only JSON-lines
// output log, and a resume ledger that makes reruns skip already-attempted
// contracts.
//
// Failures of individual tasks are logged and dropped; they never abort the
// pool. There is no dead-letter queue.
package generate
