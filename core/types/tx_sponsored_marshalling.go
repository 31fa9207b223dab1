package types

import (
	"encoding/json"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// txJSON is the JSON representation of transactions.
type txJSON struct {
	Type hexutil.Uint64 `json:"type"`

	ChainID              *hexutil.Big    `json:"chainId,omitempty"`
	Nonce                *hexutil.Uint64 `json:"nonce"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	Gas                  *hexutil.Uint64 `json:"gas"`
	To                   *common.Address `json:"to,omitempty"` // omitted for contract creation
	Value                *hexutil.Big    `json:"value"`
	Input                *hexutil.Bytes  `json:"input"`
	ExpiredTime          *hexutil.Uint64 `json:"expiredTime,omitempty"`
	PayerV               *hexutil.Big    `json:"payerV,omitempty"`
	PayerR               *hexutil.Big    `json:"payerR,omitempty"`
	PayerS               *hexutil.Big    `json:"payerS,omitempty"`
	V                    *hexutil.Big    `json:"v"`
	R                    *hexutil.Big    `json:"r"`
	S                    *hexutil.Big    `json:"s"`
}

// MarshalJSON marshals as JSON with a hash.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	var enc txJSON
	switch itx := tx.inner.(type) {
	case *SponsoredTx:
		enc.Type = hexutil.Uint64(tx.Type())
		enc.ChainID = (*hexutil.Big)(itx.ChainID)
		enc.Nonce = (*hexutil.Uint64)(&itx.Nonce)
		enc.MaxPriorityFeePerGas = (*hexutil.Big)(itx.GasTipCap)
		enc.MaxFeePerGas = (*hexutil.Big)(itx.GasFeeCap)
		enc.Gas = (*hexutil.Uint64)(&itx.Gas)
		enc.To = tx.To()
		enc.Value = (*hexutil.Big)(itx.Value)
		enc.Input = (*hexutil.Bytes)(&itx.Data)
		enc.ExpiredTime = (*hexutil.Uint64)(&itx.ExpiredTime)
		enc.PayerV = (*hexutil.Big)(itx.PayerV)
		enc.PayerR = (*hexutil.Big)(itx.PayerR)
		enc.PayerS = (*hexutil.Big)(itx.PayerS)
		enc.V = (*hexutil.Big)(itx.V)
		enc.R = (*hexutil.Big)(itx.R)
		enc.S = (*hexutil.Big)(itx.S)
	default:
		return nil, ErrTxTypeNotSupported
	}
	return json.Marshal(&enc)
}

// UnmarshalJSON unmarshals from JSON.
func (tx *Transaction) UnmarshalJSON(input []byte) error {
	var dec txJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}

	var inner TxData
	switch byte(dec.Type) {
	case SponsoredTxType:
		var itx SponsoredTx
		inner = &itx
		if dec.ChainID == nil {
			return errors.New("missing required field 'chainId' in transaction")
		}
		itx.ChainID = (*big.Int)(dec.ChainID)
		if dec.Nonce == nil {
			return errors.New("missing required field 'nonce' in transaction")
		}
		itx.Nonce = uint64(*dec.Nonce)
		if dec.MaxPriorityFeePerGas == nil {
			return errors.New("missing required field 'maxPriorityFeePerGas' for txdata")
		}
		itx.GasTipCap = (*big.Int)(dec.MaxPriorityFeePerGas)
		if dec.MaxFeePerGas == nil {
			return errors.New("missing required field 'maxFeePerGas' for txdata")
		}
		itx.GasFeeCap = (*big.Int)(dec.MaxFeePerGas)
		if dec.Gas == nil {
			return errors.New("missing required field 'gas' for txdata")
		}
		itx.Gas = uint64(*dec.Gas)
		// 'to' may be absent: a missing recipient means contract creation.
		itx.To = dec.To
		if dec.Value == nil {
			return errors.New("missing required field 'value' in transaction")
		}
		itx.Value = (*big.Int)(dec.Value)
		if dec.Input == nil {
			return errors.New("missing required field 'input' in transaction")
		}
		itx.Data = *dec.Input
		if dec.ExpiredTime == nil {
			return errors.New("missing required field 'expiredTime' in transaction")
		}
		itx.ExpiredTime = uint64(*dec.ExpiredTime)
		if dec.PayerV == nil {
			return errors.New("missing required field 'payerV' in transaction")
		}
		itx.PayerV = (*big.Int)(dec.PayerV)
		if dec.PayerR == nil {
			return errors.New("missing required field 'payerR' in transaction")
		}
		itx.PayerR = (*big.Int)(dec.PayerR)
		if dec.PayerS == nil {
			return errors.New("missing required field 'payerS' in transaction")
		}
		itx.PayerS = (*big.Int)(dec.PayerS)
		if dec.V == nil {
			return errors.New("missing required field 'v' in transaction")
		}
		itx.V = (*big.Int)(dec.V)
		if dec.R == nil {
			return errors.New("missing required field 'r' in transaction")
		}
		itx.R = (*big.Int)(dec.R)
		if dec.S == nil {
			return errors.New("missing required field 's' in transaction")
		}
		itx.S = (*big.Int)(dec.S)
		if err := itx.checkScalarWidths(); err != nil {
			return err
		}
	default:
		return ErrTxTypeNotSupported
	}

	tx.setDecoded(inner)
	return nil
}
