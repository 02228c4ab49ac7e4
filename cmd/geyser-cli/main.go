package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bloXroute-Labs/geyser-client/config"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/metrics"
	"github.com/bloXroute-Labs/geyser-client/services/display"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/bloXroute-Labs/geyser-client/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		UseShortOptionHandling: true,
		Name:                   "geyser-cli",
		Usage:                  "subscribe to and query a Solana Geyser gRPC endpoint",
		Version:                version.BuildVersion,
		Flags:                  utils.GlobalFlags,
		Action:                 cmdIndex,
		Before:                 config.BeforeFunc,
		After:                  config.AfterFunc,
		ExitErrHandler:         config.ExitErrHandler,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "choose what to index or query interactively",
				Action: cmdIndex,
			},
			{
				Name:   "subscribe",
				Usage:  "stream filtered updates, interactive when no category is selected",
				Flags:  utils.SubscribeFlags,
				Action: cmdSubscribe,
			},
			{
				Name:   "health-check",
				Usage:  "check the health of the endpoint",
				Action: queryCommand(actionHealthCheck),
			},
			{
				Name:   "health-watch",
				Usage:  "stream health status changes of the endpoint",
				Action: queryCommand(actionHealthWatch),
			},
			{
				Name:   "subscribe-replay-info",
				Usage:  "get the first slot the endpoint can replay from",
				Action: queryCommand(actionSubscribeReplayInfo),
			},
			{
				Name:  "ping",
				Usage: "send a ping request",
				Flags: []cli.Flag{utils.CountFlag},
				Action: func(c *cli.Context) error {
					return runAction(c, action{kind: actionPing, count: int32(c.Int(utils.CountFlag.Name))})
				},
			},
			{
				Name:   "get-latest-blockhash",
				Usage:  "get the latest blockhash",
				Action: queryCommand(actionGetLatestBlockhash),
			},
			{
				Name:   "get-block-height",
				Usage:  "get the current block height",
				Action: queryCommand(actionGetBlockHeight),
			},
			{
				Name:   "get-slot",
				Usage:  "get the current slot",
				Action: queryCommand(actionGetSlot),
			},
			{
				Name:  "is-blockhash-valid",
				Usage: "check whether a blockhash is still valid",
				Flags: []cli.Flag{utils.BlockhashFlag},
				Action: func(c *cli.Context) error {
					return runAction(c, action{kind: actionIsBlockhashValid, blockhash: c.String(utils.BlockhashFlag.Name)})
				},
			},
			{
				Name:   "get-version",
				Usage:  "get the version of the endpoint",
				Action: queryCommand(actionGetVersion),
			},
		},
	}

	ctx, cancel := utils.ContextWithSignal(context.Background())
	defer cancel()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func queryCommand(kind actionKind) cli.ActionFunc {
	return func(c *cli.Context) error {
		return runAction(c, action{kind: kind})
	}
}

func cmdIndex(c *cli.Context) error {
	grpcConfig, err := config.NewGRPCFromCLI(c)
	if err != nil {
		return err
	}
	a, err := runPrompt(config.NewSubscribeFromCLI(c, grpcConfig), os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return execute(c, grpcConfig, a)
}

func cmdSubscribe(c *cli.Context) error {
	grpcConfig, err := config.NewGRPCFromCLI(c)
	if err != nil {
		return err
	}

	sub := config.NewSubscribeFromCLI(c, grpcConfig)
	a := action{kind: actionSubscribe, subscribe: sub}
	if sub.Options.Empty() {
		fmt.Println("No subscription options provided. Starting interactive mode...")
		if a, err = runPrompt(sub, os.Stdin, os.Stdout); err != nil {
			return err
		}
	}
	return execute(c, grpcConfig, a)
}

func runAction(c *cli.Context, a action) error {
	grpcConfig, err := config.NewGRPCFromCLI(c)
	if err != nil {
		return err
	}
	return execute(c, grpcConfig, a)
}

func execute(c *cli.Context, grpcConfig *config.GRPC, a action) error {
	exporter, err := metrics.RegisterStatsd()
	if err != nil {
		return err
	}
	stopTracer := metrics.StartTracer()
	defer stopTracer()
	defer func() {
		if err := exporter.Close(); err != nil {
			log.Debugf("failed to close metrics exporter: %v", err)
		}
	}()

	r := newRunner(grpcConfig, display.New(os.Stdout), exporter)
	err = r.run(c.Context, a)
	if c.Context.Err() != nil {
		log.Info("interrupted, exiting")
		return nil
	}
	return err
}
