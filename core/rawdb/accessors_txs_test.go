package rawdb

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/kunlun-chain/kunlun/core/types"
)

func newTestTx() *types.Transaction {
	to := common.HexToAddress("0x055504FE4d542fE266C7215a9cc2aa22E6a78445")
	return types.NewTx(&types.SponsoredTx{
		ChainID:     big.NewInt(1337),
		Nonce:       3,
		GasTipCap:   big.NewInt(2),
		GasFeeCap:   big.NewInt(875000000),
		Gas:         50000,
		To:          &to,
		Value:       big.NewInt(42),
		Data:        []byte{0xca, 0xfe},
		ExpiredTime: 1700000000,
		PayerV:      big.NewInt(1),
		PayerR:      big.NewInt(11111),
		PayerS:      big.NewInt(22222),
		V:           big.NewInt(0),
		R:           big.NewInt(33333),
		S:           big.NewInt(44444),
	})
}

func TestSponsoredTxStorage(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDatabase()
	defer db.Close()

	tx := newTestTx()
	hash := tx.Hash()

	has, err := HasSponsoredTx(ctx, db, hash)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, WriteSponsoredTx(ctx, db, tx))

	has, err = HasSponsoredTx(ctx, db, hash)
	require.NoError(t, err)
	require.True(t, has)

	read, err := ReadSponsoredTx(ctx, db, hash)
	require.NoError(t, err)
	require.NotNil(t, read)
	require.Equal(t, hash, read.Hash())

	want, err := tx.MarshalBinary()
	require.NoError(t, err)
	got, err := read.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, DeleteSponsoredTx(ctx, db, hash))
	read, err = ReadSponsoredTx(ctx, db, hash)
	require.NoError(t, err)
	require.Nil(t, read)
}

func TestReadSponsoredTxMissing(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDatabase()
	defer db.Close()

	read, err := ReadSponsoredTx(ctx, db, common.HexToHash("0xdead"))
	require.NoError(t, err)
	require.Nil(t, read)
}
