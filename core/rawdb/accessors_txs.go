package rawdb

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/erigon-lib/kv"
	"github.com/stephenfire/go-rtl"

	"github.com/kunlun-chain/kunlun/core/types"
)

// WriteSponsoredTx persists tx under its hash, in the fixed-layout storage
// form.
func WriteSponsoredTx(ctx context.Context, db kv.RwDB, tx *types.Transaction) error {
	record, err := tx.StorageRecord()
	if err != nil {
		return err
	}
	data, err := rtl.Marshal(record)
	if err != nil {
		return err
	}
	hash := tx.Hash()
	return db.Update(ctx, func(dbtx kv.RwTx) error {
		return dbtx.Put(kv.EthTx, hash.Bytes(), data)
	})
}

// ReadSponsoredTx retrieves the transaction stored under hash, or nil if it
// is not present.
func ReadSponsoredTx(ctx context.Context, db kv.RwDB, hash common.Hash) (*types.Transaction, error) {
	var data []byte
	if err := db.View(ctx, func(dbtx kv.Tx) error {
		v, err := dbtx.GetOne(kv.EthTx, hash.Bytes())
		if err != nil {
			return err
		}
		data = common.CopyBytes(v)
		return nil
	}); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	stored := new(types.StorageSponsoredTx)
	if err := rtl.Unmarshal(data, stored); err != nil {
		return nil, err
	}
	return types.NewTx(stored.Tx()), nil
}

// HasSponsoredTx reports whether a transaction is stored under hash.
func HasSponsoredTx(ctx context.Context, db kv.RwDB, hash common.Hash) (bool, error) {
	var has bool
	err := db.View(ctx, func(dbtx kv.Tx) error {
		var err error
		has, err = dbtx.Has(kv.EthTx, hash.Bytes())
		return err
	})
	return has, err
}

// DeleteSponsoredTx removes the transaction stored under hash, if any.
func DeleteSponsoredTx(ctx context.Context, db kv.RwDB, hash common.Hash) error {
	return db.Update(ctx, func(dbtx kv.RwTx) error {
		return dbtx.Delete(kv.EthTx, hash.Bytes())
	})
}
