package app

import (
	cli2 "github.com/kunlun-chain/kunlun/turbo/cli"
	"github.com/urfave/cli/v2"
)

func MakeApp(name string, commands []*cli.Command) *cli.App {
	app := cli2.NewApp()
	app.Name = name
	app.Usage = "sponsored transaction toolbox"
	app.UsageText = app.Name + ` [command] [flags]`
	app.Commands = commands

	return app
}
