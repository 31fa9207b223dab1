package main

import (
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"

	"github.com/kunlun-chain/kunlun/turbo/app"
)

func main() {
	defer func() {
		panicRes := recover()
		if panicRes == nil {
			return
		}
		log.Error("catch panic", "err", panicRes)
		os.Exit(1)
	}()
	kunlun := app.MakeApp("kunlun", app.TxCommands)
	if err := kunlun.Run(os.Args); err != nil {
		_, printErr := fmt.Fprintln(os.Stderr, err)
		if printErr != nil {
			log.Warn("Fprintln error", "err", printErr)
		}
		os.Exit(1)
	}
}
