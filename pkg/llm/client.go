package llm

// Completer is a single-shot text completion provider. One prompt in,
// one raw response out, no retries.
type Completer interface {
	Complete(prompt string) (string, error)
}
