package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SponsoredTx is the transaction variant whose gas cost may be covered by a
// third party. The payer authorizes that with an independent signature
// carried in PayerV, PayerR, PayerS; those values are opaque scalars at this
// layer and are only interpreted by the execution engine, which also owns the
// ExpiredTime deadline check.
//
// Field declaration order is the RLP wire order and must not be changed.
type SponsoredTx struct {
	ChainID     *big.Int
	Nonce       uint64
	GasTipCap   *big.Int // a.k.a. maxPriorityFeePerGas
	GasFeeCap   *big.Int // a.k.a. maxFeePerGas
	Gas         uint64
	To          *common.Address `rlp:"nil"` // nil means contract creation
	Value       *big.Int
	Data        []byte
	ExpiredTime uint64
	PayerV      *big.Int
	PayerR      *big.Int
	PayerS      *big.Int

	// Signature values of the sender.
	V *big.Int
	R *big.Int
	S *big.Int
}

// copy creates a deep copy of the transaction data and initializes all fields.
func (tx *SponsoredTx) copy() TxData {
	cpy := &SponsoredTx{
		Nonce:       tx.Nonce,
		To:          copyAddressPtr(tx.To),
		Data:        common.CopyBytes(tx.Data),
		Gas:         tx.Gas,
		ExpiredTime: tx.ExpiredTime,

		// These are copied below.
		ChainID:   new(big.Int),
		GasTipCap: new(big.Int),
		GasFeeCap: new(big.Int),
		Value:     new(big.Int),
		PayerV:    new(big.Int),
		PayerR:    new(big.Int),
		PayerS:    new(big.Int),
		V:         new(big.Int),
		R:         new(big.Int),
		S:         new(big.Int),
	}
	if tx.ChainID != nil {
		cpy.ChainID.Set(tx.ChainID)
	}
	if tx.GasTipCap != nil {
		cpy.GasTipCap.Set(tx.GasTipCap)
	}
	if tx.GasFeeCap != nil {
		cpy.GasFeeCap.Set(tx.GasFeeCap)
	}
	if tx.Value != nil {
		cpy.Value.Set(tx.Value)
	}
	if tx.PayerV != nil {
		cpy.PayerV.Set(tx.PayerV)
	}
	if tx.PayerR != nil {
		cpy.PayerR.Set(tx.PayerR)
	}
	if tx.PayerS != nil {
		cpy.PayerS.Set(tx.PayerS)
	}
	if tx.V != nil {
		cpy.V.Set(tx.V)
	}
	if tx.R != nil {
		cpy.R.Set(tx.R)
	}
	if tx.S != nil {
		cpy.S.Set(tx.S)
	}
	return cpy
}

func (tx *SponsoredTx) txType() byte           { return SponsoredTxType }
func (tx *SponsoredTx) chainID() *big.Int      { return tx.ChainID }
func (tx *SponsoredTx) accessList() AccessList { return nil }
func (tx *SponsoredTx) data() []byte           { return tx.Data }
func (tx *SponsoredTx) gas() uint64            { return tx.Gas }
func (tx *SponsoredTx) gasFeeCap() *big.Int    { return tx.GasFeeCap }
func (tx *SponsoredTx) gasTipCap() *big.Int    { return tx.GasTipCap }
func (tx *SponsoredTx) value() *big.Int        { return tx.Value }
func (tx *SponsoredTx) nonce() uint64          { return tx.Nonce }
func (tx *SponsoredTx) to() *common.Address    { return tx.To }

// gasPrice reports the legacy single-dimensional price, which this variant
// does not carry. Callers must treat nil as "not applicable", not as zero.
func (tx *SponsoredTx) gasPrice() *big.Int { return nil }

func (tx *SponsoredTx) rawSignatureValues() (v, r, s *big.Int) {
	return tx.V, tx.R, tx.S
}

func (tx *SponsoredTx) setSignatureValues(chainID, v, r, s *big.Int) {
	tx.ChainID, tx.V, tx.R, tx.S = chainID, v, r, s
}

// sigFields returns the consensus fields covered by the sender's signature,
// in wire order, with the signer's chain id bound in place of the record's.
func (tx *SponsoredTx) sigFields(chainID *big.Int) []interface{} {
	return []interface{}{
		chainID,
		tx.Nonce,
		tx.GasTipCap,
		tx.GasFeeCap,
		tx.Gas,
		tx.To,
		tx.Value,
		tx.Data,
		tx.ExpiredTime,
		tx.PayerV,
		tx.PayerR,
		tx.PayerS,
	}
}

// checkScalarWidths enforces the declared width of every big.Int field. The
// RLP decoder only checks minimal big-endian form for big.Int targets, so
// width limits must be applied after decoding.
func (tx *SponsoredTx) checkScalarWidths() error {
	for _, f := range []struct {
		name string
		v    *big.Int
		bits int
	}{
		{"chainId", tx.ChainID, 64},
		{"maxPriorityFeePerGas", tx.GasTipCap, 128},
		{"maxFeePerGas", tx.GasFeeCap, 128},
		{"value", tx.Value, 256},
		{"payerV", tx.PayerV, 256},
		{"payerR", tx.PayerR, 256},
		{"payerS", tx.PayerS, 256},
		{"v", tx.V, 256},
		{"r", tx.R, 256},
		{"s", tx.S, 256},
	} {
		if f.v != nil && f.v.BitLen() > f.bits {
			return fmt.Errorf("rlp: %s exceeds %d bits", f.name, f.bits)
		}
	}
	return nil
}

func (tx *SponsoredTx) effectiveGasPrice(dst *big.Int, baseFee *big.Int) *big.Int {
	if baseFee == nil {
		return dst.Set(tx.GasFeeCap)
	}
	tip := dst.Sub(tx.GasFeeCap, baseFee)
	if tip.Cmp(tx.GasTipCap) > 0 {
		tip.Set(tx.GasTipCap)
	}
	return tip.Add(tip, baseFee)
}

// size is a heuristic for the in-memory footprint of the record. It is a
// fixed per-field contribution plus the dynamic length of Data, not the wire
// size.
func (tx *SponsoredTx) size() uint64 {
	const (
		wordLen   = 32 // value, payer signature scalars
		scalarLen = 8  // chain id, nonce, gas, expired time
		feeLen    = 16 // fee caps
	)
	return 4*scalarLen + 2*feeLen + common.AddressLength + 4*wordLen + uint64(len(tx.Data))
}

func copyAddressPtr(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	cpy := *a
	return &cpy
}
