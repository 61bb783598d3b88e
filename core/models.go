package core

import "time"

// ContractRecord is one normalized contract extract from the source dataset.
// Records are immutable after the prepare stage and persist as one CSV row each.
type ContractRecord struct {
	CompositeKey   string // object hash + process id + contract number
	Objeto         string // normalized contract object text
	Valor          string // normalized currency string ("R$ 1.234,56")
	ProcessoGDF    string
	NumeroContrato string
	RawTextHash    string // 12-hex content hash of the raw source text
	VersionIndex   int    // dense 0-based counter within the CompositeKey group
}

// QAPair is a single generated question/answer record.
// One contract yields up to k pairs; pairs are appended to the JSONL log
// and never mutated.
type QAPair struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Objeto   string `json:"objeto"`
	Valor    string `json:"valor"`
}

// QAEntry is a QAPair enriched with its embedding, as stored in the local index.
type QAEntry struct {
	ID         string
	Question   string
	Answer     string
	Objeto     string
	Valor      string
	Vector     []float32 // normalized embedding (populated by the indexer)
	InsertedAt time.Time
}

// CombinedText returns the text blob used for embedding a pair.
func (p *QAPair) CombinedText() string {
	return p.Question + " " + p.Objeto + " " + p.Answer + " " + p.Valor
}

// Entry converts a pair into a storable index entry without a vector.
func (p *QAPair) Entry() *QAEntry {
	return &QAEntry{
		ID:       p.ID,
		Question: p.Question,
		Answer:   p.Answer,
		Objeto:   p.Objeto,
		Valor:    p.Valor,
	}
}

// SearchResult is a QA entry match with its relevance score.
type SearchResult struct {
	Entry *QAEntry
	Score float32
}
