// Package graph implements breadth- and depth-first traversal over small
// string-keyed adjacency maps: floors of one building or roads of one
// network.
//
// Neighbor order is significant. Every traversal visits neighbors in the
// order they were added, so ties between equal-length paths always resolve
// to the first one discovered.
//
// Unreachable nodes are signalled by absence from a result map, never by a
// sentinel distance.
package graph
