package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inoxlang/dynseq/internal/config"
	"github.com/inoxlang/dynseq/internal/memds"
	"github.com/muesli/termenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"

	_ "embed"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = config.APP_NAME
	CMD_LOG_SRC       = "dynseq-cmd"
)

var (
	//go:embed default_scenario.yaml
	DEFAULT_SCENARIO []byte

	completer = &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":         predict.Files("*.yaml"),
			"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
			"no-color":  predict.Nothing,
		},
	}
)

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	flags := flag.NewFlagSet(COMMAND_NAME, flag.ContinueOnError)
	flags.SetOutput(errW)

	var (
		scenarioPath string
		logLevelName string
		noColor      bool
	)

	flags.StringVar(&scenarioPath, "f", "", "path of a YAML scenario file, the default scenario is run if not set")
	flags.StringVar(&logLevelName, "log-level", config.LOG_LEVEL.String(), "log level (trace, debug, info, warn, error), see "+config.LOG_LEVEL_ENV_VAR_NAME)
	flags.BoolVar(&noColor, "no-color", config.NO_COLOR, "disable colors")

	if err := flags.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return ERROR_STATUS_CODE
	}

	logLevel, err := zerolog.ParseLevel(strings.ToLower(logLevelName))
	if err != nil {
		fmt.Fprintln(errW, "invalid log level:", logLevelName)
		return ERROR_STATUS_CODE
	}

	profile := config.COLOR_PROFILE
	if noColor {
		profile = termenv.Ascii
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:     errW,
		NoColor: profile == termenv.Ascii,
	}).Level(logLevel).With().Timestamp().Str(memds.SOURCE_LOG_FIELD_NAME, CMD_LOG_SRC).Logger()

	if config.INVALID_LOG_LEVEL != "" {
		logger.Warn().Str("value", config.INVALID_LOG_LEVEL).Msgf("invalid %s, using %s", config.LOG_LEVEL_ENV_VAR_NAME, config.DEFAULT_LOG_LEVEL)
	}

	content := DEFAULT_SCENARIO
	if scenarioPath != "" {
		content, err = os.ReadFile(scenarioPath)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
	}

	scenario, err := ParseScenario(content)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	scenario.Run(outW, profile, logger)
	return 0
}
