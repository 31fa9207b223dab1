package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kunlun-chain/kunlun/node"
)

var configFile = flag.String("f", "etc/kunlun.yaml", "the config file")

func main() {
	flag.Parse()

	if err := node.Run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
