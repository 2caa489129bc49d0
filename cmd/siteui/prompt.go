package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-siteui/pkg/prompt"
	"github.com/goliatone/go-siteui/pkg/validation"
)

func (c *cli) promptCommand() *cobra.Command {
	var (
		formFile string
		attempts int
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill a form definition interactively",
		Long: `Ask every field of a YAML form definition, re-asking until the value
passes the form rules.

Example form:
  title: Contact us
  fields:
    - name: email
      label: Email
      type: email
      required: true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(formFile)
			if err != nil {
				return fmt.Errorf("open form: %w", err)
			}
			defer f.Close()

			form, err := prompt.DecodeForm(f)
			if err != nil {
				return err
			}
			return c.runPrompt(cmd, form, attempts)
		},
	}
	cmd.Flags().StringVarP(&formFile, "form", "f", "", "YAML form definition")
	cmd.Flags().IntVar(&attempts, "attempts", 3, "answers allowed per field before giving up")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

func (c *cli) runPrompt(cmd *cobra.Command, form prompt.Form, attempts int) error {
	ctx := cmd.Context()
	driver := c.newDriver(c.out)
	filler := prompt.NewFiller(driver,
		prompt.WithValidator(validation.New(validation.WithLogger(c.logger))),
		prompt.WithMaxAttempts(attempts),
	)

	fields, res, err := filler.Fill(ctx, form)
	if err != nil {
		return err
	}

	submit, err := driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Submit these values?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !submit {
		fmt.Fprintln(c.out, "discarded")
		return nil
	}

	for _, field := range fields {
		fmt.Fprintf(c.out, "%s: %s\n", field.Name, field.Value)
	}
	if !res.Valid {
		for _, fr := range res.Invalid() {
			fmt.Fprintf(c.out, "invalid %s: %s\n", fr.Field.Name, fr.Result.Message)
		}
		return errInvalid
	}
	return nil
}
