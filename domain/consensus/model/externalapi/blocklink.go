package externalapi

// BlockKind tags the variant of a directory-layer block in the block
// link chain.
type BlockKind byte

// The three directory-layer block kinds.
const (
	BlockKindDS BlockKind = iota
	BlockKindVC
	BlockKindFB
)

// String returns the block kind as a short human-readable tag.
func (kind BlockKind) String() string {
	switch kind {
	case BlockKindDS:
		return "DS"
	case BlockKindVC:
		return "VC"
	case BlockKindFB:
		return "FB"
	}
	return "Unknown"
}

// BlockLink is one entry of the total-order chain that indexes DS, VC and
// fallback blocks uniformly. TotalIndex is strictly monotonically
// increasing across the link sequence and each link is appended exactly
// once.
type BlockLink struct {
	TotalIndex uint64
	DSEpochNum uint64
	Kind       BlockKind
	BlockHash  Hash
}
