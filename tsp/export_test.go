package tsp

// NextPermutation exposes the brute-force enumerator to tsp_test.
var NextPermutation = nextPermutation
