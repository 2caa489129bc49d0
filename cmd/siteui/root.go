package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-siteui/pkg/config"
	"github.com/goliatone/go-siteui/pkg/prompt"
	"github.com/goliatone/go-siteui/pkg/timer"
)

// errInvalid reports a failed validation whose details were already printed.
var errInvalid = errors.New("siteui: input is invalid")

type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger

	newDriver func(out io.Writer) prompt.Driver
	scheduler timer.Scheduler
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{
		in:        in,
		out:       out,
		errOut:    errOut,
		newDriver: prompt.NewSurveyDriver,
		scheduler: timer.NewReal(),
	}
}

func execute(c *cli, args []string) int {
	root := c.rootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(c.errOut, "Error:", err)
		}
		return 1
	}
	return 0
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "siteui",
		Short: "Marketing page behaviours: validation, counters and page replay",
		Long: `siteui runs the behaviour layer of the marketing page outside a browser.

Commands:
  siteui validate   # check one field value against the form rules
  siteui prompt     # fill a form definition interactively
  siteui count      # animate a statistic counter in the terminal
  siteui render     # replay scrolls and clicks against a page`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", "", "config file path (embedded defaults when empty)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.validateCommand(),
		c.promptCommand(),
		c.countCommand(),
		c.renderCommand(),
	)
	return root
}

func (c *cli) setup() error {
	c.logger = c.buildLogger()

	if c.cfgFile == "" {
		cfg, err := config.Default()
		if err != nil {
			return err
		}
		c.cfg = cfg
		return nil
	}
	cfg, err := config.LoadFile(c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger.Debug("configuration loaded", zap.String("path", c.cfgFile))
	return nil
}

func (c *cli) buildLogger() *zap.Logger {
	level := zapcore.WarnLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if c.verbose {
		level = zapcore.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(c.errOut), level)
	return zap.New(core)
}
