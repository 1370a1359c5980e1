// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jmcdonald/jarls/internal/config"
)

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	writer := zerolog.ConsoleWriter{Out: out, NoColor: noColor}
	writer.TimeFormat = "15:04:05"
	writer.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
	return writer
}

// New returns a logger writing to out, or to the rotating file named by cfg.Log.File.
// Listing output never goes through this logger.
func New(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	noColor := cfg.NoColor
	if cfg.Log.File != "" {
		out = &lumberjack.Logger{
			Filename:   config.ExpandPath(cfg.Log.File),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		noColor = true
	}

	if cfg.Log.JSON {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToJSON(err, true)
		}
	} else {
		out = consoleWriter(out, noColor)
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToString(err, true)
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Stack().Logger(), nil
}
