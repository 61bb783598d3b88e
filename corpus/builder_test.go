package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(rawText, objeto, valor string) DocumentEntry {
	return DocumentEntry{
		RawText: rawText,
		Metadata: map[string]string{
			MetaObjeto:   objeto,
			MetaValor:    valor,
			MetaProcesso: "00410-00001234/2023-01",
			MetaNumero:   "042/2023",
		},
	}
}

func TestBuildRecords(t *testing.T) {
	entries := []DocumentEntry{
		entry("raw text one", "Aquisição de material de limpeza", "R$ 1.234,56"),
		entry("raw text two", "Serviços de vigilância", "2.000,00"),
	}

	records := BuildRecords(entries)
	require.Len(t, records, 2)

	assert.Equal(t, "Aquisição de material de limpeza", records[0].Objeto)
	assert.Equal(t, "R$ 1.234,56", records[0].Valor)
	assert.Equal(t, "R$ 2.000,00", records[1].Valor)
	assert.Equal(t, 0, records[0].VersionIndex)
	assert.Equal(t, 0, records[1].VersionIndex)
	assert.Len(t, records[0].RawTextHash, 12)
	assert.NotEqual(t, records[0].CompositeKey, records[1].CompositeKey)
}

func TestBuildRecordsDropsInvalid(t *testing.T) {
	noObjeto := entry("raw", "", "R$ 1,00")
	noValor := entry("raw", "Objeto", "")
	badValor := entry("raw", "Objeto", "a definir")

	records := BuildRecords([]DocumentEntry{noObjeto, noValor, badValor})
	assert.Empty(t, records)
}

func TestBuildRecordsDeduplicates(t *testing.T) {
	// Same composite key and same raw text: exact duplicate, second dropped.
	a := entry("identical raw text", "Aquisição de material", "R$ 1,00")
	b := entry("identical raw text", "Aquisição de material", "R$ 1,00")

	records := BuildRecords([]DocumentEntry{a, b})
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].VersionIndex)
}

func TestBuildRecordsVersionIndices(t *testing.T) {
	// Same composite key, different raw text: both survive with dense
	// version indices in first-seen order.
	a := entry("published version", "Aquisição de material", "R$ 1,00")
	b := entry("republished with corrections", "Aquisição de material", "R$ 1,00")
	other := entry("unrelated", "Outro objeto", "R$ 2,00")

	records := BuildRecords([]DocumentEntry{a, b, other})
	require.Len(t, records, 3)

	assert.Equal(t, records[0].CompositeKey, records[1].CompositeKey)
	assert.Equal(t, 0, records[0].VersionIndex)
	assert.Equal(t, 1, records[1].VersionIndex)
	assert.Equal(t, 0, records[2].VersionIndex)
	assert.NotEqual(t, records[0].RawTextHash, records[1].RawTextHash)
}
