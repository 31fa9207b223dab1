// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/kunlun-chain/kunlun/params"
)

var (
	ErrInvalidChainId = errors.New("invalid chain id for signer")
)

// sigCache is used to cache the derived sender and contains
// the signer used to derive it.
type sigCache struct {
	signer Signer
	from   common.Address
}

// MakeSigner returns a Signer based on the given chain config.
func MakeSigner(config *params.ChainConfig) Signer {
	return NewSponsoredSigner(config.ChainID)
}

// LatestSignerForChainID returns the 'most permissive' Signer available.
//
// Use this in transaction-handling code where the chain config is unknown.
// If you have a ChainConfig, use MakeSigner instead.
func LatestSignerForChainID(chainID *big.Int) Signer {
	return NewSponsoredSigner(chainID)
}

// SignTx signs the transaction using the given signer and private key.
func SignTx(tx *Transaction, s Signer, prv *ecdsa.PrivateKey) (*Transaction, error) {
	h := s.Hash(tx)
	sig, err := crypto.Sign(h[:], prv)
	if err != nil {
		return nil, err
	}
	return tx.WithSignature(s, sig)
}

// SignNewTx creates a transaction and signs it.
func SignNewTx(txdata TxData, s Signer, prv *ecdsa.PrivateKey) (*Transaction, error) {
	tx := NewTx(txdata)
	h := s.Hash(tx)
	sig, err := crypto.Sign(h[:], prv)
	if err != nil {
		return nil, err
	}
	return tx.WithSignature(s, sig)
}

// MustSignNewTx creates a transaction and signs it.
// This panics if the transaction cannot be signed.
func MustSignNewTx(txdata TxData, s Signer, prv *ecdsa.PrivateKey) *Transaction {
	tx, err := SignNewTx(txdata, s, prv)
	if err != nil {
		panic(err)
	}
	return tx
}

// Sender returns the address derived from the signature (V, R, S) using secp256k1
// elliptic curve and an error if it failed deriving or upon an incorrect
// signature.
//
// Sender may cache the address, allowing it to be used regardless of
// signing method. The cache is invalidated if the cached signer does
// not match the signer used in the current call.
func Sender(signer Signer, tx *Transaction) (common.Address, error) {
	if sc := tx.from.Load(); sc != nil {
		sigCache := sc.(sigCache)
		// If the signer used to derive from in a previous
		// call is not the same as used current, invalidate
		// the cache.
		if sigCache.signer.Equal(signer) {
			return sigCache.from, nil
		}
	}

	addr, err := signer.Sender(tx)
	if err != nil {
		return common.Address{}, err
	}
	tx.from.Store(sigCache{signer: signer, from: addr})
	return addr, nil
}

// Signer encapsulates transaction signature handling. The name of this type is slightly
// misleading because Signers don't actually sign, they're just for validating and
// processing of signatures.
//
// Note that this interface is not a stable API and may change at any time to accommodate
// new protocol rules.
type Signer interface {
	// Sender returns the sender address of the transaction.
	Sender(tx *Transaction) (common.Address, error)

	// SignatureValues returns the raw R, S, V values corresponding to the
	// given signature.
	SignatureValues(tx *Transaction, sig []byte) (r, s, v *big.Int, err error)

	ChainID() *big.Int

	// Hash returns 'signature hash', i.e. the transaction hash that is signed by the
	// private key. This hash does not uniquely identify the transaction.
	Hash(tx *Transaction) common.Hash

	// Equal returns true if the given signer is the same as the receiver.
	Equal(Signer) bool
}

type sponsoredSigner struct {
	chainId *big.Int
}

// NewSponsoredSigner returns a signer accepting sponsored transactions bound
// to the given replay-protection domain.
func NewSponsoredSigner(chainId *big.Int) Signer {
	if chainId == nil {
		chainId = new(big.Int)
	}
	return sponsoredSigner{chainId: chainId}
}

func (s sponsoredSigner) ChainID() *big.Int {
	return s.chainId
}

func (s sponsoredSigner) Sender(tx *Transaction) (common.Address, error) {
	if tx.Type() != SponsoredTxType {
		return common.Address{}, ErrTxTypeNotSupported
	}
	V, R, S := tx.RawSignatureValues()
	// The wire form carries the y-parity, recovery expects 27/28.
	V = new(big.Int).Add(V, big.NewInt(27))
	if tx.ChainId().Cmp(s.chainId) != 0 {
		return common.Address{}, fmt.Errorf("%w: have %d want %d", ErrInvalidChainId, tx.ChainId(), s.chainId)
	}
	return recoverPlain(s.Hash(tx), R, S, V)
}

func (s sponsoredSigner) SignatureValues(tx *Transaction, sig []byte) (r, sv, v *big.Int, err error) {
	if tx.Type() != SponsoredTxType {
		return nil, nil, nil, ErrTxTypeNotSupported
	}
	r, sv, v = decodeSignature(sig)
	return r, sv, v, nil
}

func (s sponsoredSigner) Equal(o Signer) bool {
	x, ok := o.(sponsoredSigner)
	return ok && x.chainId.Cmp(s.chainId) == 0
}

// Hash returns the hash to be signed by the sender.
// It does not uniquely identify the transaction.
func (s sponsoredSigner) Hash(tx *Transaction) common.Hash {
	inner, ok := tx.inner.(*SponsoredTx)
	if !ok {
		return common.Hash{}
	}
	return prefixedRlpHash(tx.Type(), inner.sigFields(s.chainId))
}

// SigningBytes assembles the exact preimage whose keccak256 is signed by the
// sender: the type discriminant byte followed by the RLP list of the twelve
// consensus fields, bound to the signer's chain id.
func SigningBytes(tx *Transaction, signer Signer) ([]byte, error) {
	inner, ok := tx.inner.(*SponsoredTx)
	if !ok {
		return nil, ErrTxTypeNotSupported
	}
	return prefixedRlpBytes(tx.Type(), inner.sigFields(signer.ChainID())), nil
}

// PayloadLenForSignature returns the length of SigningBytes without
// materializing the preimage: the encoded field list length plus one for the
// type discriminant. It must stay in lock-step with SigningBytes.
func PayloadLenForSignature(tx *Transaction, signer Signer) (int, error) {
	inner, ok := tx.inner.(*SponsoredTx)
	if !ok {
		return 0, ErrTxTypeNotSupported
	}
	c := writeCounter(0)
	if err := rlp.Encode(&c, inner.sigFields(signer.ChainID())); err != nil {
		return 0, err
	}
	return int(c) + 1, nil
}

func decodeSignature(sig []byte) (r, s, v *big.Int) {
	if len(sig) != crypto.SignatureLength {
		panic(fmt.Sprintf("wrong size for signature: got %d, want %d", len(sig), crypto.SignatureLength))
	}
	r = new(big.Int).SetBytes(sig[:32])
	s = new(big.Int).SetBytes(sig[32:64])
	v = new(big.Int).SetBytes([]byte{sig[64]})
	return r, s, v
}

func recoverPlain(sighash common.Hash, R, S, Vb *big.Int) (common.Address, error) {
	if Vb.BitLen() > 8 {
		return common.Address{}, ErrInvalidSig
	}
	V := byte(Vb.Uint64() - 27)
	if !crypto.ValidateSignatureValues(V, R, S, true) {
		return common.Address{}, ErrInvalidSig
	}
	// encode the signature in uncompressed format
	r, s := R.Bytes(), S.Bytes()
	sig := make([]byte, crypto.SignatureLength)
	copy(sig[32-len(r):32], r)
	copy(sig[64-len(s):64], s)
	sig[64] = V
	// recover the public key from the signature
	pub, err := crypto.Ecrecover(sighash[:], sig)
	if err != nil {
		return common.Address{}, err
	}
	if len(pub) == 0 || pub[0] != 4 {
		return common.Address{}, errors.New("invalid public key")
	}
	var addr common.Address
	copy(addr[:], crypto.Keccak256(pub[1:])[12:])
	return addr, nil
}
