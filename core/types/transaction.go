package types

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ErrInvalidSig         = errors.New("invalid transaction v, r, s values")
	ErrTxTypeNotSupported = errors.New("transaction type not supported")
	errShortTypedTx       = errors.New("typed transaction too short")
)

// Transaction types. Only the sponsored variant is implemented in this
// repository; the other discriminants belong to sibling variants of the
// family and are listed so the envelope can tell them apart.
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
	BlobTxType       = 0x03
	SetCodeTxType    = 0x04
	SponsoredTxType  = 0x05
)

// Transaction wraps the consensus contents of a transaction together with its
// signature. Once constructed it is immutable; the cached hash, size and
// sender survive for the lifetime of the wrapper.
type Transaction struct {
	inner TxData

	// caches
	hash atomic.Value
	size atomic.Value
	from atomic.Value
}

// NewTx creates a new transaction.
func NewTx(inner TxData) *Transaction {
	tx := new(Transaction)
	tx.setDecoded(inner.copy())
	return tx
}

// TxData is the underlying data of a transaction.
//
// This is implemented by SponsoredTx and by the sibling variants of the
// family. Accessors that do not apply to a variant return nil rather than a
// zero value so callers can branch on presence.
type TxData interface {
	txType() byte // returns the type ID
	copy() TxData // creates a deep copy and initializes all fields

	chainID() *big.Int
	accessList() AccessList
	data() []byte
	gas() uint64
	gasPrice() *big.Int
	gasTipCap() *big.Int
	gasFeeCap() *big.Int
	value() *big.Int
	nonce() uint64
	to() *common.Address

	rawSignatureValues() (v, r, s *big.Int)
	setSignatureValues(chainID, v, r, s *big.Int)

	// effectiveGasPrice computes the gas price paid by the transaction, given
	// the inclusion block baseFee. Implementations must not modify baseFee.
	effectiveGasPrice(dst *big.Int, baseFee *big.Int) *big.Int

	// size is an in-memory footprint heuristic, monotonic in len(data()).
	size() uint64
}

// EncodeRLP implements rlp.Encoder. Typed transactions are embedded in RLP
// lists as opaque byte strings carrying the full typed envelope.
func (tx *Transaction) EncodeRLP(w io.Writer) error {
	buf := encodeBufferPool.Get().(*bytes.Buffer)
	defer encodeBufferPool.Put(buf)
	buf.Reset()
	if err := tx.encodeTyped(buf); err != nil {
		return err
	}
	return rlp.Encode(w, buf.Bytes())
}

// encodeTyped writes the canonical encoding of tx: the type discriminant byte
// followed by the RLP list of the variant's fields.
func (tx *Transaction) encodeTyped(w *bytes.Buffer) error {
	w.WriteByte(tx.Type())
	return rlp.Encode(w, tx.inner)
}

// MarshalBinary returns the canonical consensus encoding of the transaction.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	err := tx.encodeTyped(&buf)
	return buf.Bytes(), err
}

// DecodeRLP implements rlp.Decoder.
func (tx *Transaction) DecodeRLP(s *rlp.Stream) error {
	kind, _, err := s.Kind()
	switch {
	case err != nil:
		return err
	case kind == rlp.List:
		// Untyped legacy transactions are not part of this family.
		return ErrTxTypeNotSupported
	default:
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		inner, err := tx.decodeTyped(b)
		if err == nil {
			tx.setDecoded(inner)
		}
		return err
	}
}

// UnmarshalBinary decodes the canonical consensus encoding of a transaction.
// Malformed input is rejected atomically: on error tx is left untouched.
func (tx *Transaction) UnmarshalBinary(b []byte) error {
	if len(b) > 0 && b[0] > 0x7f {
		// An RLP list header in first position means a legacy transaction.
		return ErrTxTypeNotSupported
	}
	inner, err := tx.decodeTyped(b)
	if err != nil {
		return err
	}
	tx.setDecoded(inner)
	return nil
}

// decodeTyped decodes a typed transaction from the canonical format.
func (tx *Transaction) decodeTyped(b []byte) (TxData, error) {
	if len(b) <= 1 {
		return nil, errShortTypedTx
	}
	switch b[0] {
	case SponsoredTxType:
		inner := new(SponsoredTx)
		if err := rlp.DecodeBytes(b[1:], inner); err != nil {
			return nil, err
		}
		if err := inner.checkScalarWidths(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, ErrTxTypeNotSupported
	}
}

// setDecoded sets the inner transaction after decoding.
func (tx *Transaction) setDecoded(inner TxData) {
	tx.inner = inner
}

// Type returns the transaction type.
func (tx *Transaction) Type() uint8 {
	return tx.inner.txType()
}

// ChainId returns the chain ID of the transaction. It is never nil for this
// family: every variant carries replay protection.
func (tx *Transaction) ChainId() *big.Int {
	return tx.inner.chainID()
}

// Data returns the input data of the transaction.
func (tx *Transaction) Data() []byte { return tx.inner.data() }

// AccessList returns the access list of the transaction, or nil for variants
// that do not carry one.
func (tx *Transaction) AccessList() AccessList { return tx.inner.accessList() }

// Gas returns the gas limit of the transaction.
func (tx *Transaction) Gas() uint64 { return tx.inner.gas() }

// GasPrice returns the legacy gas price of the transaction, or nil for
// dynamic fee variants, which price gas with GasTipCap and GasFeeCap instead.
func (tx *Transaction) GasPrice() *big.Int {
	if price := tx.inner.gasPrice(); price != nil {
		return new(big.Int).Set(price)
	}
	return nil
}

// GasTipCap returns the maxPriorityFeePerGas of the transaction.
func (tx *Transaction) GasTipCap() *big.Int { return new(big.Int).Set(tx.inner.gasTipCap()) }

// GasFeeCap returns the maxFeePerGas of the transaction.
func (tx *Transaction) GasFeeCap() *big.Int { return new(big.Int).Set(tx.inner.gasFeeCap()) }

// Value returns the native currency amount of the transaction.
func (tx *Transaction) Value() *big.Int { return new(big.Int).Set(tx.inner.value()) }

// Nonce returns the sender account nonce of the transaction.
func (tx *Transaction) Nonce() uint64 { return tx.inner.nonce() }

// To returns the recipient address of the transaction.
// For contract-creation transactions, To returns nil.
func (tx *Transaction) To() *common.Address {
	return copyAddressPtr(tx.inner.to())
}

// IsDynamicFee reports whether the transaction bids a two-dimensional
// (tip cap, fee cap) gas price rather than a single legacy price.
func (tx *Transaction) IsDynamicFee() bool {
	switch tx.Type() {
	case DynamicFeeTxType, BlobTxType, SetCodeTxType, SponsoredTxType:
		return true
	}
	return false
}

// ExpiredTime returns the sponsorship deadline of a sponsored transaction and
// zero for every other variant. Its interpretation belongs to the execution
// layer.
func (tx *Transaction) ExpiredTime() uint64 {
	if inner, ok := tx.inner.(*SponsoredTx); ok {
		return inner.ExpiredTime
	}
	return 0
}

// PayerSignatureValues returns the raw payer signature scalars of a sponsored
// transaction. They are carried, never verified, by this package.
func (tx *Transaction) PayerSignatureValues() (v, r, s *big.Int) {
	if inner, ok := tx.inner.(*SponsoredTx); ok {
		return inner.PayerV, inner.PayerR, inner.PayerS
	}
	return nil, nil, nil
}

// MaxFeePerBlobGas returns nil for every variant implemented here; only blob
// transactions carry a blob fee cap.
func (tx *Transaction) MaxFeePerBlobGas() *big.Int { return nil }

// BlobHashes returns nil for every variant implemented here.
func (tx *Transaction) BlobHashes() []common.Hash { return nil }

// AuthorizationList returns nil for every variant implemented here; only
// set-code transactions carry authorizations.
func (tx *Transaction) AuthorizationList() [][]byte { return nil }

// RawSignatureValues returns the V, R, S signature values of the sender.
// The return values should not be modified by the caller.
func (tx *Transaction) RawSignatureValues() (v, r, s *big.Int) {
	return tx.inner.rawSignatureValues()
}

// EffectiveGasPrice computes the gas price paid per unit of gas, given the
// inclusion block base fee. With a nil base fee it returns the fee cap
// verbatim; otherwise the tip is capped at GasTipCap so the producer never
// collects more than the declared priority fee.
func (tx *Transaction) EffectiveGasPrice(dst *big.Int, baseFee *big.Int) *big.Int {
	if dst == nil {
		dst = new(big.Int)
	}
	return tx.inner.effectiveGasPrice(dst, baseFee)
}

// Size returns the in-memory footprint heuristic of the transaction.
// The result is computed on the first call and cached thereafter.
func (tx *Transaction) Size() uint64 {
	if size := tx.size.Load(); size != nil {
		return size.(uint64)
	}
	size := tx.inner.size()
	tx.size.Store(size)
	return size
}

// Hash returns the transaction hash: the keccak256 of the canonical typed
// encoding. The hash is computed on the first call and cached thereafter.
func (tx *Transaction) Hash() common.Hash {
	if hash := tx.hash.Load(); hash != nil {
		return hash.(common.Hash)
	}
	h := prefixedRlpHash(tx.Type(), tx.inner)
	tx.hash.Store(h)
	return h
}

// WithSignature returns a new transaction with the given signature applied.
// The signer's chain id is written into the copy, re-homing a draft that was
// assembled for a different domain.
func (tx *Transaction) WithSignature(signer Signer, sig []byte) (*Transaction, error) {
	r, s, v, err := signer.SignatureValues(tx, sig)
	if err != nil {
		return nil, err
	}
	cpy := tx.inner.copy()
	cpy.setSignatureValues(signer.ChainID(), v, r, s)
	return &Transaction{inner: cpy}, nil
}

// Transactions is a Transaction slice type for basic sorting and batching.
type Transactions []*Transaction

// Len returns the length of s.
func (s Transactions) Len() int { return len(s) }

// EncodeIndex encodes the i'th transaction to w in its canonical typed form.
func (s Transactions) EncodeIndex(i int, w *bytes.Buffer) {
	s[i].encodeTyped(w)
}
