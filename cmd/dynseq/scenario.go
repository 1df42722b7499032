package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/inoxlang/dynseq/internal/memds"
	"github.com/inoxlang/dynseq/internal/value"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

const (
	APPEND_OP   = "append"
	EXTEND_OP   = "extend"
	REMOVE_OP   = "remove"
	CONTAINS_OP = "contains"
	INDEX_OF_OP = "index-of"
	UPDATE_OP   = "update"
	CLEAR_OP    = "clear"
	SORT_OP     = "sort"
	REVERSE_OP  = "reverse"
	NEXT_OP     = "next"
	LEN_OP      = "len"
	PRINT_OP    = "print"
	IS_DIGIT_OP = "is-digit"

	ABSENT_RESULT = "absent"
)

var (
	// operation -> exact number of arguments, -1 for any
	OP_ARG_COUNTS = map[string]int{
		APPEND_OP:   1,
		EXTEND_OP:   -1,
		REMOVE_OP:   1,
		CONTAINS_OP: 1,
		INDEX_OF_OP: 1,
		UPDATE_OP:   2,
		CLEAR_OP:    0,
		SORT_OP:     0,
		REVERSE_OP:  0,
		NEXT_OP:     -1,
		LEN_OP:      0,
		PRINT_OP:    0,
		IS_DIGIT_OP: 1,
	}

	ErrInvalidScenario = errors.New("invalid scenario")
)

type Scenario struct {
	Initial []any  `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
}

type Step struct {
	Op   string `yaml:"op"`
	Args []any  `yaml:"args"`
}

func ParseScenario(b []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(b, &scenario); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	if err := scenario.check(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) check() error {
	for i, step := range s.Steps {
		expectedArgCount, ok := OP_ARG_COUNTS[step.Op]
		if !ok {
			return fmt.Errorf("%w: step %d: unknown operation '%s'", ErrInvalidScenario, i, step.Op)
		}

		if expectedArgCount >= 0 && len(step.Args) != expectedArgCount {
			return fmt.Errorf("%w: step %d: operation '%s' expects %d argument(s), got %d",
				ErrInvalidScenario, i, step.Op, expectedArgCount, len(step.Args))
		}

		switch step.Op {
		case UPDATE_OP:
			if _, ok := parseArg(step.Args[0]).(value.Int); !ok {
				return fmt.Errorf("%w: step %d: the index passed to 'update' should be an integer", ErrInvalidScenario, i)
			}
		case NEXT_OP:
			if len(step.Args) > 1 {
				return fmt.Errorf("%w: step %d: operation 'next' expects at most 1 argument", ErrInvalidScenario, i)
			}
			if len(step.Args) == 1 {
				if _, ok := parseArg(step.Args[0]).(value.Int); !ok {
					return fmt.Errorf("%w: step %d: the count passed to 'next' should be an integer", ErrInvalidScenario, i)
				}
			}
		}
	}
	return nil
}

// parseArg lifts a decoded YAML value, strings of the form 'c' are characters.
func parseArg(arg any) value.Value {
	if s, ok := arg.(string); ok && len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		inner := s[1 : len(s)-1]
		if utf8.RuneCountInString(inner) == 1 {
			r, _ := utf8.DecodeRuneInString(inner)
			return value.Char(r)
		}
	}
	return value.Of(arg)
}

func parseArgs(args []any) []value.Value {
	values := make([]value.Value, len(args))
	for i, arg := range args {
		values[i] = parseArg(arg)
	}
	return values
}

type scenarioRunner struct {
	out    *termenv.Output
	logger zerolog.Logger

	seq    *memds.DynamicSequence[value.Value]
	cursor *memds.Cursor[value.Value]
}

// Run executes the steps of the scenario and writes the result of each step to w.
// Element absence and out of range indexes are logged and do not stop the execution.
func (s *Scenario) Run(w io.Writer, profile termenv.Profile, logger zerolog.Logger) {
	runner := &scenarioRunner{
		out:    termenv.NewOutput(w, termenv.WithProfile(profile)),
		logger: logger,
	}

	runner.seq = memds.NewDynamicSequenceWithConfig(memds.DynamicSequenceConfig[value.Value]{
		Logger: &logger,
	}, parseArgs(s.Initial)...)
	runner.cursor = runner.seq.Cursor()

	runner.printLine(runner.out.String("initial").Faint().String(), runner.seq.String())

	for _, step := range s.Steps {
		runner.runStep(step)
	}
}

func (r *scenarioRunner) runStep(step Step) {
	args := parseArgs(step.Args)

	header := []string{r.out.String("> " + step.Op).Bold().String()}
	for _, arg := range args {
		header = append(header, arg.Repr())
	}
	r.printLine(header...)

	seq := r.seq

	switch step.Op {
	case APPEND_OP:
		seq.Append(args[0])
	case EXTEND_OP:
		seq.Extend(args...)
	case REMOVE_OP:
		seq.Remove(args[0])
	case CONTAINS_OP:
		r.printLine(fmt.Sprint(seq.Contains(args[0])))
		return
	case INDEX_OF_OP:
		index, err := seq.IndexOf(args[0])
		if err != nil {
			r.logger.Warn().Err(err).Str("op", step.Op).Send()
			r.printLine(r.out.String(ABSENT_RESULT).Foreground(r.out.Color("3")).String())
		} else {
			r.printLine(fmt.Sprint(index))
		}
		return
	case UPDATE_OP:
		index := int(args[0].(value.Int))
		if err := seq.Update(index, args[1]); err != nil {
			r.logger.Warn().Err(err).Str("op", step.Op).Send()
		}
	case CLEAR_OP:
		seq.Clear()
	case SORT_OP:
		seq.Sort()
	case REVERSE_OP:
		seq.Reverse()
	case NEXT_OP:
		count := 1
		if len(args) == 1 {
			count = int(args[0].(value.Int))
		}
		var elements []string
		for i := 0; i < count; i++ {
			e, ok := r.cursor.Next()
			if !ok {
				elements = append(elements, ABSENT_RESULT)
				break
			}
			elements = append(elements, e.Repr())
		}
		r.printLine(elements...)
		return
	case LEN_OP:
		r.printLine(fmt.Sprint(seq.Len()))
		return
	case PRINT_OP:
	case IS_DIGIT_OP:
		r.printLine(fmt.Sprint(value.IsDigit(args[0])))
		return
	}

	r.printLine(r.seq.String())
}

func (r *scenarioRunner) printLine(parts ...string) {
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}
