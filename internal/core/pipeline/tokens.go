package pipeline

// EstimateTokens is a cheap token estimator (~4 chars ≈ 1 token). It is a
// heuristic, not a real tokenizer; it only has to be deterministic and
// roughly proportional, since it sizes chunks and picks the processing path.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + 3) / 4
}
