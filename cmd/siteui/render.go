package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/site"
	"github.com/goliatone/go-siteui/pkg/timer"
)

type actionKind string

const (
	actionScroll actionKind = "scroll"
	actionClick  actionKind = "click"
)

type action struct {
	kind  actionKind
	value string
}

// actionFlag appends to a shared list so scrolls and clicks replay in the
// order they were given on the command line.
type actionFlag struct {
	kind    actionKind
	actions *[]action
}

func (f actionFlag) String() string { return "" }

func (f actionFlag) Type() string {
	if f.kind == actionScroll {
		return "pixels"
	}
	return "selector"
}

func (f actionFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if f.kind == actionScroll {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("scroll offset %q is not a number", value)
		}
	}
	if value == "" {
		return fmt.Errorf("empty %s value", f.kind)
	}
	*f.actions = append(*f.actions, action{kind: f.kind, value: value})
	return nil
}

type renderOptions struct {
	actions []action
	width   float64
	height  float64
	output  string
}

func (c *cli) renderCommand() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render PAGE.html",
		Short: "Replay scrolls and clicks against a page and print the result",
		Long: `Load a page, initialise every behaviour, replay the given scrolls and
clicks in order, let running counters finish and print the resulting HTML.

Element geometry is read from data-top, data-left, data-width and
data-height attributes.

Examples:
  siteui render index.html --scroll 1200
  siteui render index.html --click .show-more-btn --click "#navToggle"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runRender(args[0], opts)
		},
	}
	cmd.Flags().Var(actionFlag{kind: actionScroll, actions: &opts.actions}, "scroll", "scroll the window to this offset (repeatable)")
	cmd.Flags().Var(actionFlag{kind: actionClick, actions: &opts.actions}, "click", "click the first element matching this selector (repeatable)")
	cmd.Flags().Float64Var(&opts.width, "width", 1280, "viewport width")
	cmd.Flags().Float64Var(&opts.height, "height", 800, "viewport height")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func (c *cli) runRender(path string, opts renderOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	doc, err := dom.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	clock := timer.NewManual()
	app, err := site.New(doc, dom.NewWindow(opts.width, opts.height),
		site.WithConfig(c.cfg),
		site.WithLogger(c.logger),
		site.WithScheduler(clock),
	)
	if err != nil {
		return err
	}
	defer app.Close()
	app.Init()

	for _, act := range opts.actions {
		switch act.kind {
		case actionScroll:
			top, _ := strconv.ParseFloat(act.value, 64)
			app.ScrollTo(top)
		case actionClick:
			target, err := doc.QuerySelector(act.value)
			if err != nil {
				return err
			}
			if !target.Valid() {
				return fmt.Errorf("no element matches %q", act.value)
			}
			app.Click(target)
		}
		c.logger.Debug("replayed action", zap.String("kind", string(act.kind)), zap.String("value", act.value))
	}
	clock.Advance(c.cfg.Counters.Duration + c.cfg.Counters.Step)

	var page string
	app.Do(func(doc *dom.Document) { page = doc.String() })
	if opts.output == "" {
		fmt.Fprintln(c.out, page)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(c.out, "Page written to %s\n", opts.output)
	return nil
}
