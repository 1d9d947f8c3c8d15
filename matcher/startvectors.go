package matcher

// forEachStartVector calls f once for every b in the product space
// ∏_k [0, n_k], in lexicographic order with dimension 0 varying slowest
// (spec.md's Open Question on enumeration order: this implementation fixes
// dimension-0-major lexicographic order so output ordering is reproducible
// run to run, even though the contract only requires determinism per mode).
func forEachStartVector(lens []int, f func(b Position)) {
	b := make(Position, len(lens))
	forEachStartVectorRec(lens, b, 0, f)
}

func forEachStartVectorRec(lens []int, b Position, k int, f func(b Position)) {
	if k == len(lens) {
		f(b.clone())
		return
	}
	for v := 0; v <= lens[k]; v++ {
		b[k] = v
		forEachStartVectorRec(lens, b, k+1, f)
	}
}
