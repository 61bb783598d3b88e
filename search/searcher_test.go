package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/contratoqa/ai/mock"
	"github.com/poiesic/contratoqa/core"
	"github.com/poiesic/contratoqa/storage"
	"github.com/poiesic/contratoqa/storage/badger"
)

func newSearchRepo(t *testing.T) storage.QARepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

// fixedEmbedder maps known texts to fixed unit vectors so similarity ordering
// is deterministic.
func fixedEmbedder(vectors map[string][]float32, fallback []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return fallback, nil
	}
	return embedder
}

func TestSearcherRanksBySimilarity(t *testing.T) {
	repo := newSearchRepo(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		&core.QAEntry{ID: "reforma_00_v0", Question: "Qual o valor da reforma?", Answer: "R$ 1,00", Vector: []float32{1, 0}},
		&core.QAEntry{ID: "quase_00_v0", Question: "Quanto custou a obra?", Answer: "R$ 2,00", Vector: []float32{0.8, 0.6}},
		&core.QAEntry{ID: "longe_00_v0", Question: "Qual o prazo?", Answer: "R$ 3,00", Vector: []float32{0, 1}})
	require.NoError(t, err)

	embedder := fixedEmbedder(map[string][]float32{
		"valor da reforma": {1, 0},
	}, []float32{0, 1})

	searcher, err := NewSearcher(repo, embedder)
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "valor da reforma", 10)
	require.NoError(t, err)
	require.Len(t, results, 2, "entries below the 0.60 floor are excluded")
	assert.Equal(t, "reforma_00_v0", results[0].Entry.ID)
	assert.Equal(t, "quase_00_v0", results[1].Entry.ID)
}

func TestSearcherNormalizesQueryVector(t *testing.T) {
	repo := newSearchRepo(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		&core.QAEntry{ID: "alvo_00_v0", Question: "Qual o valor?", Answer: "R$ 1,00", Vector: []float32{1, 0}})
	require.NoError(t, err)

	// Unnormalized query embedding; the searcher must scale it to unit
	// length before scoring.
	embedder := fixedEmbedder(map[string][]float32{"valor": {5, 0}}, nil)

	searcher, err := NewSearcher(repo, embedder)
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "valor", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, float64(results[0].Score), 1e-5)
}

func TestSearcherHonorsMaxHits(t *testing.T) {
	repo := newSearchRepo(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		&core.QAEntry{ID: "a_00_v0", Question: "A?", Answer: "R$ 1,00", Vector: []float32{1, 0}},
		&core.QAEntry{ID: "b_00_v0", Question: "B?", Answer: "R$ 1,00", Vector: []float32{1, 0}},
		&core.QAEntry{ID: "c_00_v0", Question: "C?", Answer: "R$ 1,00", Vector: []float32{1, 0}})
	require.NoError(t, err)

	searcher, err := NewSearcher(repo, fixedEmbedder(nil, []float32{1, 0}))
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "qualquer", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearcherRejectsEmptyQuery(t *testing.T) {
	searcher, err := NewSearcher(newSearchRepo(t), mock.NewMockEmbedder())
	require.NoError(t, err)

	_, err = searcher.FindSimilar(context.Background(), "   ", 5)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearcherPropagatesEmbedderErrors(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}

	searcher, err := NewSearcher(newSearchRepo(t), embedder)
	require.NoError(t, err)

	_, err = searcher.FindSimilar(context.Background(), "valor", 5)
	assert.Error(t, err)
}

func TestNewSearcherValidatesDependencies(t *testing.T) {
	_, err := NewSearcher(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewSearcher(newSearchRepo(t), nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}
