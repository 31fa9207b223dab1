package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/kunlun-chain/kunlun/node/internal/logic"
	"github.com/kunlun-chain/kunlun/node/internal/svc"
	"github.com/kunlun-chain/kunlun/node/internal/types"
)

func getTransactionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetTransactionArgs
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewGetTransactionLogic(r.Context(), svcCtx)
		resp, err := l.GetTransaction(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
