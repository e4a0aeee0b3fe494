// Package similarity provides the capability that scores how close two
// concept labels are, as a value in [0, 1].
//
// The graph core never calls a Similarity itself; builders use one to
// decide which edges to add. Variants are chosen at construction time:
//
//   - Table        fixed concept → related-concept → score lookup.
//   - WordOverlap  Jaccard overlap of lowercase words, with optional pinned pairs.
//   - CharOverlap  shared characters relative to the first label.
//   - Embedding    cosine similarity of vectors from an OpenAI-compatible
//     embeddings endpoint (LM Studio, llama.cpp server, OpenAI), mapped to
//     [0, 1] as (cos + 1) / 2.
//
// Batch scores many pairs at once and rejects mismatched input lengths
// with ErrBatchLength.
package similarity
