package node

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"github.com/kunlun-chain/kunlun/node/internal/config"
	"github.com/kunlun-chain/kunlun/node/internal/handler"
	"github.com/kunlun-chain/kunlun/node/internal/svc"
)

// Run loads the server config and serves the transaction REST endpoints until
// the process is stopped.
func Run(configFile string) error {
	var c config.Config
	conf.MustLoad(configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}
	defer ctx.Close()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
	return nil
}
