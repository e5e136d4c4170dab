// Package cache implements EdgeCache, a separately-chained hash table from
// Vertex to an owned, deep-copied EdgeList.
//
// EdgeCache never evicts: entries persist until Clear is called explicitly
// (typically by the engine, on any provider-registry mutation). Get and Put
// both deep-copy across the cache boundary, so neither the caller's input
// nor the cache's internal storage is ever shared by reference with the
// other side.
package cache
