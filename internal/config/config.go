package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

const (
	APP_NAME = "dynseq"

	LOG_LEVEL_ENV_VAR_NAME = "DYNSEQ_LOG_LEVEL"
	DEFAULT_LOG_LEVEL      = zerolog.WarnLevel
)

var (
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool

	// termenv.Ascii if !SHOULD_COLORIZE
	COLOR_PROFILE termenv.Profile

	LOG_LEVEL zerolog.Level

	// set if the value of LOG_LEVEL_ENV_VAR_NAME is not a valid level, LOG_LEVEL is then DEFAULT_LOG_LEVEL.
	INVALID_LOG_LEVEL string
)

func init() {
	loadFromEnv(os.LookupEnv)
}

func loadFromEnv(lookupEnv func(key string) (string, bool)) {
	// FORCE COLOR

	FORCE_COLOR = false
	if s, ok := lookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = isTruthy(s)
	}

	//TERMCOLOR

	colorterm, _ := lookupEnv("COLORTERM")
	TRUECOLOR_COLORTERM = colorterm == "truecolor"

	//NO_COLOR

	NO_COLOR = false
	if s, ok := lookupEnv("NO_COLOR"); ok {
		NO_COLOR = isTruthy(s)
	}

	//TERM

	term, _ := lookupEnv("TERM")
	TERM_256COLOR_CAPABLE = strings.Contains(term, "256color")

	//

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)

	switch {
	case !SHOULD_COLORIZE:
		COLOR_PROFILE = termenv.Ascii
	case TRUECOLOR_COLORTERM:
		COLOR_PROFILE = termenv.TrueColor
	case TERM_256COLOR_CAPABLE:
		COLOR_PROFILE = termenv.ANSI256
	default:
		COLOR_PROFILE = termenv.ANSI
	}

	//LOG LEVEL

	LOG_LEVEL = DEFAULT_LOG_LEVEL
	INVALID_LOG_LEVEL = ""

	if s, ok := lookupEnv(LOG_LEVEL_ENV_VAR_NAME); ok && s != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			INVALID_LOG_LEVEL = s
		} else {
			LOG_LEVEL = level
		}
	}
}

func isTruthy(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}
