// Command unitconv converts measurements between unit codes and reads and
// writes measurement records.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/arloliu/unitcode/internal/config"
	"github.com/arloliu/unitcode/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for unitconv.
//
// Positional values that start with "-" must follow a "--" separator, as in
// "unitconv convert --from 0x401 --to 0x402 -- -40"; otherwise they are read
// as short flags.
type CLI struct {
	// Global flags, overriding UNITCONV_* environment variables
	Locale   string `help:"Locale used to format numbers (BCP 47, e.g. de-DE)"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	Convert   ConvertCmd   `cmd:"" help:"Convert a value between unit codes"`
	Preferred PreferredCmd `cmd:"" help:"Show the preferred unit of a quantity"`
	Encode    EncodeCmd    `cmd:"" help:"Write values into a measurement record file"`
	Inspect   InspectCmd   `cmd:"" help:"Print the header and values of a record file"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// runtime carries what every command needs once flags and environment are
// resolved.
type runtime struct {
	cfg     config.Config
	printer *numberPrinter
	out     io.Writer
}

func newRuntime(cfg config.Config, out io.Writer) (*runtime, error) {
	tag, err := cfg.Tag()
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:     cfg,
		printer: newNumberPrinter(tag),
		out:     out,
	}, nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("unitconv"),
		kong.Description("Convert measurements between packed 64-bit unit codes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)

	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cfg, err := config.Load()
	ctx.FatalIfErrorf(err)

	if cli.Locale != "" {
		cfg.Locale = cli.Locale
	}
	if cli.LogLevel != "" {
		ctx.FatalIfErrorf(cfg.LogLevel.UnmarshalText([]byte(cli.LogLevel)))
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	rt, err := newRuntime(cfg, os.Stdout)
	ctx.FatalIfErrorf(err)

	logging.Command(ctx.Command(), "locale", cfg.Locale, "system", cfg.System.String())

	err = ctx.Run(rt)
	if err != nil {
		logging.CommandError(ctx.Command(), err)
	}
	ctx.FatalIfErrorf(err)
}
