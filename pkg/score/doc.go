// Package score implements the Veritas Reputation Scoring (VRS) model:
// a weighted composite of source credibility (S), content quality (C),
// and temporal relevance (T). It exposes [Source], [Content], [Temporal],
// [VRS], [Compute], [Weights], and [ModelVersion].
package score
