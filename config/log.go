package config

import (
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/urfave/cli/v2"
)

// NewLogFromCLI builds new log configuration from the CLI context
func NewLogFromCLI(ctx *cli.Context) (*log.Config, error) {
	consoleLevel, err := log.ParseLevel(ctx.String(utils.LogLevelFlag.Name))
	if err != nil {
		return nil, err
	}

	fileLevel, err := log.ParseLevel(ctx.String(utils.LogFileLevelFlag.Name))
	if err != nil {
		return nil, err
	}

	logConfig := log.Config{
		AppName:      ctx.App.Name,
		FileName:     ctx.String(utils.LogFileFlag.Name),
		FileLevel:    fileLevel,
		ConsoleLevel: consoleLevel,
		MaxSize:      ctx.Int(utils.LogMaxSizeFlag.Name),
		MaxBackups:   ctx.Int(utils.LogMaxBackupsFlag.Name),
		MaxAge:       ctx.Int(utils.LogMaxAgeFlag.Name),
		FluentDHost:  ctx.String(utils.FluentdHostFlag.Name),
	}

	return &logConfig, nil
}
