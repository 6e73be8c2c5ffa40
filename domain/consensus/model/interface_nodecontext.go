package model

// NodeContext exposes the node-role facts the transaction validator
// consults: whether this process is a lookup node, whether the directory
// service is idle (a shard node acting normally), and the node's shard
// assignment. The caller owns the concurrency policy for these values.
type NodeContext interface {
	IsLookupNode() bool
	IsDSIdle() bool
	IsDSNode() bool
	CurrentEpoch() uint64
	ShardID() uint32
	NumShards() uint32
}
