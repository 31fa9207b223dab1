package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// StorageSponsoredTx mirrors SponsoredTx field for field for the storage
// codec, which serializes by reflection under fixed layout rules and cannot
// consume the rlp-tagged consensus struct directly. Conversion in either
// direction is a pure structural move: no field is transformed.
type StorageSponsoredTx struct {
	ChainID     *big.Int
	Nonce       uint64
	GasTipCap   *big.Int
	GasFeeCap   *big.Int
	Gas         uint64
	To          *common.Address
	Value       *big.Int
	Data        []byte
	ExpiredTime uint64
	PayerV      *big.Int
	PayerR      *big.Int
	PayerS      *big.Int
	V           *big.Int
	R           *big.Int
	S           *big.Int
}

// NewStorageSponsoredTx builds the storage mirror of tx. The Data buffer is
// shared, not copied; the mirror must not outlive writes to the source.
func NewStorageSponsoredTx(tx *SponsoredTx) *StorageSponsoredTx {
	return &StorageSponsoredTx{
		ChainID:     tx.ChainID,
		Nonce:       tx.Nonce,
		GasTipCap:   tx.GasTipCap,
		GasFeeCap:   tx.GasFeeCap,
		Gas:         tx.Gas,
		To:          tx.To,
		Value:       tx.Value,
		Data:        tx.Data,
		ExpiredTime: tx.ExpiredTime,
		PayerV:      tx.PayerV,
		PayerR:      tx.PayerR,
		PayerS:      tx.PayerS,
		V:           tx.V,
		R:           tx.R,
		S:           tx.S,
	}
}

// StorageRecord returns the fixed-layout mirror of a sponsored transaction,
// or ErrTxTypeNotSupported for any other variant.
func (tx *Transaction) StorageRecord() (*StorageSponsoredTx, error) {
	inner, ok := tx.inner.(*SponsoredTx)
	if !ok {
		return nil, ErrTxTypeNotSupported
	}
	return NewStorageSponsoredTx(inner), nil
}

// Tx converts the mirror back to the consensus form, handing the Data buffer
// over to the returned record.
func (stx *StorageSponsoredTx) Tx() *SponsoredTx {
	return &SponsoredTx{
		ChainID:     stx.ChainID,
		Nonce:       stx.Nonce,
		GasTipCap:   stx.GasTipCap,
		GasFeeCap:   stx.GasFeeCap,
		Gas:         stx.Gas,
		To:          stx.To,
		Value:       stx.Value,
		Data:        stx.Data,
		ExpiredTime: stx.ExpiredTime,
		PayerV:      stx.PayerV,
		PayerR:      stx.PayerR,
		PayerS:      stx.PayerS,
		V:           stx.V,
		R:           stx.R,
		S:           stx.S,
	}
}
