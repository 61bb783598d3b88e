// Package corpus turns the serialized source dataset of public-contract
// extracts into normalized, deduplicated ContractRecords and reads/writes
// the intermediate CSV consumed by the generation stage.
package corpus
