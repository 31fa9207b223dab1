package logic

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/kunlun-chain/kunlun/core/rawdb"
	tp "github.com/kunlun-chain/kunlun/core/types"
	"github.com/kunlun-chain/kunlun/node/internal/svc"
	"github.com/kunlun-chain/kunlun/node/internal/types"
)

type GetTransactionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetTransactionLogic {
	return &GetTransactionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetTransaction loads a stored transaction by hash and returns it in the
// interchange form.
func (l *GetTransactionLogic) GetTransaction(req *types.GetTransactionArgs) (*tp.Transaction, error) {
	hash := common.HexToHash(req.Hash)
	tx, err := rawdb.ReadSponsoredTx(l.ctx, l.svcCtx.Store.DB, hash)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction not found: %s", hash.Hex())
	}
	return tx, nil
}
