package svc

import (
	"math/big"

	"github.com/ledgerwatch/log/v3"

	"github.com/kunlun-chain/kunlun/core/rawdb"
	"github.com/kunlun-chain/kunlun/core/types"
	"github.com/kunlun-chain/kunlun/node/internal/config"
)

type ServiceContext struct {
	Config config.Config
	Store  *rawdb.Store
	Signer types.Signer
}

func NewServiceContext(c config.Config) (*ServiceContext, error) {
	store, err := rawdb.Open(c.DataDir, false, log.Root())
	if err != nil {
		return nil, err
	}
	return &ServiceContext{
		Config: c,
		Store:  store,
		Signer: types.NewSponsoredSigner(new(big.Int).SetUint64(c.ChainID)),
	}, nil
}

func (ctx *ServiceContext) Close() {
	ctx.Store.Close()
}
