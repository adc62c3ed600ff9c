// Package cid estimates the compression information density (CID) of a byte
// sequence: a normalized proxy for its Kolmogorov/entropy complexity derived
// from the number of LZ77 factors the sequence decomposes into. It is an
// analysis metric, not a compressor — no token stream is serialized and no
// decoder exists.
//
// # Basic Usage
//
// Estimating the density of a sequence:
//
//	res, err := cid.Compute(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("CID: %.4f (%d factors over %d bytes)\n",
//	    res.Density, res.Factors, res.Length)
//
// Comparing against a shuffled baseline, which destroys spatial order while
// preserving symbol frequencies:
//
//	nres, err := cid.Normalized(data, cid.WithShuffles(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("normalized CID: %.4f\n", nres.Normalized)
//
// # Pipeline
//
// Compute runs a pure, deterministic pipeline: suffix array construction,
// LCP array construction (Kasai), previous-factor LZ77 parsing, and the
// closed-form bit estimate
//
//	bits = z*log2(z) + 2z*log2(n/z)  for 0 < z < n
//
// with an incompressible fallback of 8n bits otherwise. Density is
// bits/(8n). Re-running the pipeline on identical bytes yields an identical
// Result.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: cid.go (Compute, Result), normalize.go (Normalized),
//     batch.go (Batch)
//   - Configuration: options.go (Option, With* functions)
//   - Estimator: estimate.go (Estimate)
//   - Parsing: strategy.go (ParseStrategy dispatch), reference.go
//     (quadratic baseline), indexed.go (LCP range-minimum strategy)
//   - LCP construction: lcp.go
//   - Suffix arrays: internal/suffix; range-minimum trees: internal/rmq
//   - Tooling: cmd/cid (file analysis tool)
package cid
