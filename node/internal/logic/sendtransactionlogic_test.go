package logic

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	tp "github.com/kunlun-chain/kunlun/core/types"
	"github.com/kunlun-chain/kunlun/node/internal/config"
	"github.com/kunlun-chain/kunlun/node/internal/svc"
	"github.com/kunlun-chain/kunlun/node/internal/types"
)

func newTestContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	// Empty DataDir backs the context with an in-memory store.
	svcCtx, err := svc.NewServiceContext(config.Config{ChainID: 1337})
	require.NoError(t, err)
	t.Cleanup(svcCtx.Close)
	return svcCtx
}

func newTestTx() *tp.Transaction {
	to := common.HexToAddress("0x055504FE4d542fE266C7215a9cc2aa22E6a78445")
	return tp.NewTx(&tp.SponsoredTx{
		ChainID:     big.NewInt(1337),
		Nonce:       5,
		GasTipCap:   big.NewInt(3),
		GasFeeCap:   big.NewInt(875000000),
		Gas:         60000,
		To:          &to,
		Value:       big.NewInt(7),
		Data:        []byte{0xde, 0xad},
		ExpiredTime: 1700000000,
		PayerV:      big.NewInt(1),
		PayerR:      big.NewInt(12345),
		PayerS:      big.NewInt(67890),
		V:           big.NewInt(1),
		R:           big.NewInt(111),
		S:           big.NewInt(222),
	})
}

func TestSendAndGetTransaction(t *testing.T) {
	svcCtx := newTestContext(t)
	ctx := context.Background()

	tx := newTestTx()
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	sendRes, err := NewSendTransactionLogic(ctx, svcCtx).SendTransaction(&types.SendTransactionArgs{
		RawTx: hexutil.Encode(raw),
	})
	require.NoError(t, err)
	require.Equal(t, tx.Hash().Hex(), sendRes.Hash)

	got, err := NewGetTransactionLogic(ctx, svcCtx).GetTransaction(&types.GetTransactionArgs{
		Hash: sendRes.Hash,
	})
	require.NoError(t, err)
	require.Equal(t, tx.Hash(), got.Hash())
}

func TestSendTransactionRejectsMalformed(t *testing.T) {
	svcCtx := newTestContext(t)
	ctx := context.Background()

	_, err := NewSendTransactionLogic(ctx, svcCtx).SendTransaction(&types.SendTransactionArgs{
		RawTx: "0x05deadbeef",
	})
	require.Error(t, err)

	_, err = NewGetTransactionLogic(ctx, svcCtx).GetTransaction(&types.GetTransactionArgs{
		Hash: common.Hash{}.Hex(),
	})
	require.Error(t, err)
}
