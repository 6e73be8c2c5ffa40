package consensusserialization

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/utils/bitvector"
)

func TestCoSignedMessageLayout(t *testing.T) {
	headerBytes := []byte{0xde, 0xad, 0xbe, 0xef}
	coSigs := &externalapi.CoSignatures{B1: []bool{true, false, true}}
	coSigs.CS1[0] = 0x11

	message := CoSignedMessage(headerBytes, coSigs)

	// header ‖ CS1 ‖ bitvector(B1), bit-exact.
	expected := append([]byte{}, headerBytes...)
	expected = append(expected, coSigs.CS1[:]...)
	expected = append(expected, bitvector.Serialize(coSigs.B1)...)
	if !bytes.Equal(message, expected) {
		t.Fatalf("co-signed message layout mismatch:\nexpected %x\ngot      %x", expected, message)
	}
}

func TestSerializeTransactionCoreFieldsAmountRange(t *testing.T) {
	tx := &externalapi.Transaction{Amount: big.NewInt(1)}
	if _, err := SerializeTransactionCoreFields(tx); err != nil {
		t.Fatalf("a small amount should serialize: %v", err)
	}

	// Exactly 128 bits is the largest representable amount.
	maxAmount := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	tx.Amount = maxAmount
	if _, err := SerializeTransactionCoreFields(tx); err != nil {
		t.Fatalf("the maximum amount should serialize: %v", err)
	}

	tx.Amount = new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := SerializeTransactionCoreFields(tx); err == nil {
		t.Fatal("a 129-bit amount should be rejected")
	}

	tx.Amount = big.NewInt(-1)
	if _, err := SerializeTransactionCoreFields(tx); err == nil {
		t.Fatal("a negative amount should be rejected")
	}

	tx.Amount = nil
	if _, err := SerializeTransactionCoreFields(tx); err == nil {
		t.Fatal("a nil amount should be rejected")
	}
}

func TestSerializationIsDeterministicAndDiscriminating(t *testing.T) {
	header := &externalapi.DSBlockHeader{BlockNum: 3, GasPrice: 7}

	first := SerializeDSBlockHeader(header)
	second := SerializeDSBlockHeader(header)
	if !bytes.Equal(first, second) {
		t.Fatal("serializing the same header twice should be byte-identical")
	}

	changed := *header
	changed.GasPrice = 8
	if bytes.Equal(first, SerializeDSBlockHeader(&changed)) {
		t.Fatal("different headers should serialize differently")
	}
}
