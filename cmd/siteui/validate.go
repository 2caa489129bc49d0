package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-siteui/pkg/validation"
)

type validateOptions struct {
	kind     string
	name     string
	required bool
	json     bool
}

func (c *cli) validateCommand() *cobra.Command {
	var opts validateOptions
	cmd := &cobra.Command{
		Use:   "validate VALUE",
		Short: "Validate one field value",
		Long: `Validate a single value the way the page validates a form field.

Examples:
  siteui validate --kind email --required jane@example.com
  siteui validate --name phone "+1 555 123 4567"
  siteui validate --kind number -- -3`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runValidate(opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "text", "input type (text, email, number, tel)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "field name")
	cmd.Flags().BoolVarP(&opts.required, "required", "r", false, "treat the field as required")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	return cmd
}

func (c *cli) runValidate(opts validateOptions, value string) error {
	v := validation.New(validation.WithLogger(c.logger))
	res := v.Field(validation.FieldDescriptor{
		Name:     opts.name,
		Kind:     validation.KindFromInputType(opts.kind),
		Value:    value,
		Required: opts.required,
	})

	if opts.json {
		payload, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(c.out, string(payload))
	} else if res.Valid {
		fmt.Fprintln(c.out, "valid")
	} else {
		fmt.Fprintf(c.out, "invalid: %s\n", res.Message)
	}

	if !res.Valid {
		return errInvalid
	}
	return nil
}
