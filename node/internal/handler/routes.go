package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/kunlun-chain/kunlun/node/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/transaction/send",
			Handler: sendTransactionHandler(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/transaction",
			Handler: getTransactionHandler(svcCtx),
		},
	})
}
