package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zeusync/axolotl/internal/config"
	"github.com/zeusync/axolotl/internal/convert"
	"github.com/zeusync/axolotl/internal/core/observability/log"
	"github.com/zeusync/axolotl/pkg/key"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: axolotl [--config FILE] [--log-level LEVEL] <command> [args]

commands:
  parse KEY...                 split namespaced keys into namespace and key
  convert [flags] [FILE...]    re-encode key, position or rotation documents
`

var errUsage = errors.New("invalid usage")

type app struct {
	cfg    *config.Config
	logger log.Log
	stdin  io.Reader
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet("axolotl", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := flags.String("config", "", "configuration file (yaml or json)")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := log.New(level, log.Encoding(cfg.Log.Encoding))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, logger: logger, stdin: stdin, stdout: stdout}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return errUsage
	}
	switch rest[0] {
	case "parse":
		return a.parse(rest[1:])
	case "convert":
		return a.convert(ctx, rest[1:])
	default:
		flags.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
}

func (a *app) parse(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: parse needs at least one key", errUsage)
	}

	var failed int
	for _, arg := range args {
		k, err := key.ParseRef(arg)
		if err != nil {
			a.logger.Warn("bad namespaced key", log.String("input", arg), log.Error(err))
			failed++
			continue
		}
		a.logger.Debug("parsed key", log.Key("key", k))
		fmt.Fprintf(a.stdout, "namespace=%q key=%q hash=%016x\n", k.Namespace(), k.Key(), k.Hash())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d keys failed to parse", failed, len(args))
	}
	return nil
}

func (a *app) convert(ctx context.Context, args []string) error {
	opts := a.cfg.Convert

	flags := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	flags.StringVar(&opts.Kind, "kind", opts.Kind, "document kind: key, position, rotation")
	flags.StringVar(&opts.From, "from", opts.From, "input format: "+strings.Join(convert.Formats(), ", "))
	flags.StringVar(&opts.To, "to", opts.To, "output format: "+strings.Join(convert.Formats(), ", "))
	flags.IntVar(&opts.Workers, "workers", opts.Workers, "files converted concurrently")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if opts.Workers <= 0 {
		return fmt.Errorf("%w: --workers must be positive", errUsage)
	}

	converter, err := convert.New(convert.Kind(opts.Kind), opts.From, opts.To)
	if err != nil {
		return err
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	logger := a.logger.With(log.String("kind", opts.Kind), log.String("from", opts.From), log.String("to", opts.To))
	outputs := make([][]byte, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := a.read(input)
			if err != nil {
				return err
			}
			out, decoded, err := converter.Convert(data)
			if err != nil {
				logger.Error("conversion failed", log.String("input", input), log.Error(err))
				return fmt.Errorf("%s: %w", input, err)
			}
			logger.Debug("converted", log.String("input", input), log.Stringer("value", decoded))
			outputs[i] = out
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if opts.To == "yaml" && i > 0 {
			if _, err = io.WriteString(a.stdout, "---\n"); err != nil {
				return err
			}
		}
		if _, err = a.stdout.Write(out); err != nil {
			return err
		}
		if opts.To == "json" {
			if _, err = io.WriteString(a.stdout, "\n"); err != nil {
				return err
			}
		}
	}
	logger.Info("conversion done", log.Int("documents", len(inputs)))
	return nil
}

func (a *app) read(input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(input)
}
