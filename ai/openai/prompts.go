package openai

import "fmt"

// promptTemplate asks the model for k distinct questions whose exact answer
// is the contract value, in a fixed "P<n>:" line format.
const promptTemplate = `Você é um sistema gerador de dados sintéticos para QA.
Dado um OBJETO e um VALOR, crie %d perguntas distintas, claras e sem repetir estrutura,
cuja resposta exata seja o VALOR. Formato:
P1: <pergunta 1>
P2: <pergunta 2>
...
Resposta: <valor>
OBJETO: %s
VALOR: %s`

// truncateObject bounds the object text to limit characters, appending an
// ellipsis marker when truncation happens. The limit counts runes so
// multi-byte characters are never split.
func truncateObject(objeto string, limit int) string {
	runes := []rune(objeto)
	if len(runes) <= limit {
		return objeto
	}
	return string(runes[:limit]) + "…"
}

// buildPrompt renders the generation prompt for one contract.
func buildPrompt(objeto, valor string, k, objectLimit int) string {
	return fmt.Sprintf(promptTemplate, k, truncateObject(objeto, objectLimit), valor)
}
