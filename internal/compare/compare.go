package compare

import (
	"HashCompare/internal/digest"
	"HashCompare/internal/input"
)

// Compare resolves both sources, hashes them under the same algorithm
// and reports equality plus a character-level divergence over the hex
// digests. A failed resolution short-circuits: the returned error is an
// *OperandError naming the failing side, and on a first-operand failure
// the second source is never resolved.
func Compare(a, b input.Source, algo digest.Algorithm) (*Result, error) {
	payloadA, err := input.Resolve(a)
	if err != nil {
		return nil, &OperandError{Operand: First, Err: err}
	}
	payloadB, err := input.Resolve(b)
	if err != nil {
		return nil, &OperandError{Operand: Second, Err: err}
	}

	res := &Result{
		Algorithm: algo,
		DigestA:   algo.Sum(payloadA),
		DigestB:   algo.Sum(payloadB),
	}
	res.Equal = res.DigestA == res.DigestB
	if !res.Equal {
		// Both digests come from the same algorithm, so the hex
		// strings have equal length.
		for i := 0; i < len(res.DigestA); i++ {
			if res.DigestA[i] != res.DigestB[i] {
				res.DiffChars++
			}
		}
		res.DiffPercent = float64(res.DiffChars) / float64(len(res.DigestA)) * 100.0
	}
	return res, nil
}
