package types

type SendTransactionArgs struct {
	RawTx string `json:"rawTx"`
}

type SendTransactionRes struct {
	Hash string `json:"hash"`
}

type GetTransactionArgs struct {
	Hash string `form:"hash"`
}
