package logic

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/kunlun-chain/kunlun/core/rawdb"
	tp "github.com/kunlun-chain/kunlun/core/types"
	"github.com/kunlun-chain/kunlun/node/internal/svc"
	"github.com/kunlun-chain/kunlun/node/internal/types"
)

type SendTransactionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendTransactionLogic {
	return &SendTransactionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendTransaction decodes the raw typed envelope and persists it into the
// transaction store.
func (l *SendTransactionLogic) SendTransaction(req *types.SendTransactionArgs) (*types.SendTransactionRes, error) {
	raw := strings.TrimSpace(req.RawTx)
	if !strings.HasPrefix(raw, "0x") {
		raw = "0x" + raw
	}
	b, err := hexutil.Decode(raw)
	if err != nil {
		return nil, err
	}
	tx := new(tp.Transaction)
	if err := tx.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	if err := rawdb.WriteSponsoredTx(l.ctx, l.svcCtx.Store.DB, tx); err != nil {
		return nil, err
	}
	if from, err := tp.Sender(l.svcCtx.Signer, tx); err == nil {
		l.Infof("stored transaction %s from %s", tx.Hash().Hex(), from.Hex())
	} else {
		l.Infof("stored transaction %s, sender not recoverable: %v", tx.Hash().Hex(), err)
	}
	return &types.SendTransactionRes{Hash: tx.Hash().Hex()}, nil
}
