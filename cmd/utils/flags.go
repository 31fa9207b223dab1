package utils

import (
	"github.com/urfave/cli/v2"
)

var (
	// General settings
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the transaction store",
	}
	ChainIDFlag = &cli.Uint64Flag{
		Name:  "chainid",
		Usage: "Replay-protection chain id used for the signing digest",
		Value: 1337,
	}
)
