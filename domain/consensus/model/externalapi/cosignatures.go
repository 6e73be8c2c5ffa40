package externalapi

// CoSignatures is the two-round co-signature envelope carried by every
// co-signed block header. CS1/B1 are the first consensus round's aggregate
// signature and participation bitmap; CS2/B2 are the final round's. The
// canonical signed message of CS2 is
// serialize(header) ‖ serialize(CS1) ‖ encode_bitmap(B1).
type CoSignatures struct {
	CS1 Signature
	B1  []bool
	CS2 Signature
	B2  []bool
}

// Clone returns a deep copy of the co-signature envelope.
func (cs *CoSignatures) Clone() *CoSignatures {
	clone := &CoSignatures{
		CS1: cs.CS1,
		CS2: cs.CS2,
		B1:  make([]bool, len(cs.B1)),
		B2:  make([]bool, len(cs.B2)),
	}
	copy(clone.B1, cs.B1)
	copy(clone.B2, cs.B2)
	return clone
}
