package app

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/kunlun-chain/kunlun/cmd/utils"
	"github.com/kunlun-chain/kunlun/core/rawdb"
	"github.com/kunlun-chain/kunlun/core/types"
)

// TxCommands are the transaction toolbox subcommands.
var TxCommands = []*cli.Command{
	{
		Name:      "decode",
		Usage:     "Decode a hex transaction envelope and print the interchange form",
		ArgsUsage: "<hextx>",
		Action:    decodeTx,
	},
	{
		Name:      "hash",
		Usage:     "Print the transaction hash and the sender signing digest",
		ArgsUsage: "<hextx>",
		Flags:     []cli.Flag{utils.ChainIDFlag},
		Action:    hashTx,
	},
	{
		Name:      "store",
		Usage:     "Persist a transaction into the datadir store",
		ArgsUsage: "<hextx>",
		Flags:     []cli.Flag{utils.DataDirFlag},
		Action:    storeTx,
	},
	{
		Name:      "get",
		Usage:     "Load a stored transaction by hash",
		ArgsUsage: "<hash>",
		Flags:     []cli.Flag{utils.DataDirFlag},
		Action:    getTx,
	},
}

func parseTxArg(cliCtx *cli.Context) (*types.Transaction, error) {
	if cliCtx.NArg() < 1 {
		return nil, fmt.Errorf("missing transaction argument")
	}
	arg := strings.TrimSpace(cliCtx.Args().First())
	if !strings.HasPrefix(arg, "0x") {
		arg = "0x" + arg
	}
	raw, err := hexutil.Decode(arg)
	if err != nil {
		return nil, err
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return tx, nil
}

func printTx(tx *types.Transaction) error {
	out, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func decodeTx(cliCtx *cli.Context) error {
	tx, err := parseTxArg(cliCtx)
	if err != nil {
		return err
	}
	return printTx(tx)
}

func hashTx(cliCtx *cli.Context) error {
	tx, err := parseTxArg(cliCtx)
	if err != nil {
		return err
	}
	chainID := new(big.Int).SetUint64(cliCtx.Uint64(utils.ChainIDFlag.Name))
	signer := types.NewSponsoredSigner(chainID)
	fmt.Println("hash:   ", tx.Hash().Hex())
	fmt.Println("sighash:", signer.Hash(tx).Hex())
	return nil
}

func storeTx(cliCtx *cli.Context) error {
	tx, err := parseTxArg(cliCtx)
	if err != nil {
		return err
	}
	store, err := rawdb.Open(cliCtx.String(utils.DataDirFlag.Name), false, log.Root())
	if err != nil {
		return err
	}
	defer store.Close()
	if err := rawdb.WriteSponsoredTx(cliCtx.Context, store.DB, tx); err != nil {
		return err
	}
	log.Info("Stored transaction", "hash", tx.Hash())
	return nil
}

func getTx(cliCtx *cli.Context) error {
	if cliCtx.NArg() < 1 {
		return fmt.Errorf("missing hash argument")
	}
	hash := common.HexToHash(strings.TrimSpace(cliCtx.Args().First()))
	store, err := rawdb.Open(cliCtx.String(utils.DataDirFlag.Name), true, log.Root())
	if err != nil {
		return err
	}
	defer store.Close()
	tx, err := rawdb.ReadSponsoredTx(cliCtx.Context, store.DB, hash)
	if err != nil {
		return err
	}
	if tx == nil {
		return fmt.Errorf("transaction not found: %s", hash.Hex())
	}
	return printTx(tx)
}
