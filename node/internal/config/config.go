package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	// DataDir is the transaction store directory; empty means in-memory.
	DataDir string `json:",optional"`
	ChainID uint64 `json:",default=1337"`
}
