package config

import (
	"context"
	"fmt"
	"os"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/version"
	"github.com/urfave/cli/v2"
)

// ExitErrHandler - handle errors from action function, this function executes just when we have error
func ExitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	log.Error(err)
	if closeLogger, ok := c.Context.Value(geyserclient.CloseLoggerKey).(func()); ok && closeLogger != nil {
		closeLogger()
	}
	os.Exit(1)
}

// AfterFunc - execute when action func return without an error or when we have panic
func AfterFunc(c *cli.Context) error {
	if closeLogger, ok := c.Context.Value(geyserclient.CloseLoggerKey).(func()); ok && closeLogger != nil {
		closeLogger()
	}
	return nil
}

// BeforeFunc execute before action func
func BeforeFunc(c *cli.Context) error {
	logConfig, err := NewLogFromCLI(c)
	if err != nil {
		return err
	}

	closeLogger, err := log.Init(logConfig, version.BuildVersion)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.Context = context.WithValue(c.Context, geyserclient.CloseLoggerKey, closeLogger)
	return nil
}
