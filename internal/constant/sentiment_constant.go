package constant

const (
	ClassifierStrategyKeyword = "keyword"
	ClassifierStrategyLLM     = "llm"

	// Response keywords expected from the LLM. Matching is substring
	// containment on the lower-cased response, because the model may wrap the
	// verdict in extra reasoning text.
	SentimentWordPositive = "positivo"
	SentimentWordNegative = "negativo"
	SentimentWordNeutral  = "neutro"

	// SentimentPromptTemplate instructs the model to reason step by step and
	// answer with exactly one of the three Portuguese sentiment words.
	SentimentPromptTemplate = `Você é um analista de sentimentos altamente preciso. Sua tarefa é seguir um processo de três passos para classificar o feedback de um cliente.

**Passo 1: Analise o Feedback**
Leia o feedback do cliente fornecido dentro da tag <feedback> e identifique as emoções, opiniões e fatos principais.

**Passo 2: Raciocine e Justifique**
Com base na sua análise, escreva um raciocínio curto para decidir entre 'Positivo', 'Negativo' e 'Neutro'.
- **Negativo:** Priorize esta classificação se houver qualquer sinal de crítica, insatisfação, problema ou frustração (ex: "lento", "confuso", "não gostei", "problema").
- **Positivo:** Use esta classificação se o texto expressar claramente elogio, satisfação ou sucesso, e não contiver críticas.
- **Neutro:** Use esta classificação apenas se o feedback for puramente informativo, uma pergunta, ou uma sugestão sem forte carga emocional.

**Passo 3: Dê a Resposta Final**
Forneça sua classificação final dentro de uma tag <sentiment>, usando apenas uma das três palavras: Positivo, Negativo ou Neutro.

**Exemplo de Execução:**
<feedback>A interface é um pouco confusa, mas funciona.</feedback>

**Raciocínio:** O feedback aponta um problema ("confusa"), o que indica um sentimento negativo, mesmo que também mencione que funciona. A crítica tem prioridade.
<sentiment>Negativo</sentiment>

---

**Tarefa Atual:**
<feedback>%s</feedback>

**Raciocínio:**
`
)

// Keyword lists for the local classification strategy. The two sets are
// disjoint; positive matches win when a text contains words from both.
var (
	PositiveKeywords = []string{
		"ótimo", "otimo", "excelente", "adorei", "amei", "perfeito",
		"maravilhoso", "incrível", "incrivel", "recomendo",
		"satisfeito", "funciona bem",
	}

	NegativeKeywords = []string{
		"péssimo", "pessimo", "horrível", "horrivel", "ruim", "odiei",
		"lento", "confuso", "problema", "não gostei", "nao gostei",
		"travando", "frustrado", "decepcionado",
	}
)
