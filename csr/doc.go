// Package csr freezes a core.Graph into a compressed-sparse-row snapshot
// addressed by dense node indices.
//
// Search code never touches string IDs: it walks csr relationships through
// ForEachRelationship, where each relationship is named by its source node
// and a local key (its offset in the source's adjacency). Because adjacency
// is sorted by target index and then by edge creation order, local keys and
// target indices both ascend during enumeration. Filters that pre-sort their
// forbidden keys rely on this to scan in a single forward pass.
package csr
