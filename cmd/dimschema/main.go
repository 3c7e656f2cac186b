// Command dimschema validates labeled-array data files against declarative
// schema definitions.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/arrayx/dimschema"
	"github.com/arrayx/dimschema/dense"
	"github.com/arrayx/dimschema/schemafile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dimschema",
		Short:         "Schema validation for labeled multidimensional arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var (
		schemaPath string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "validate -s schema.yaml data.json",
		Short: "Validate a data file against a schema definition",
		Long: `Validate reads a JSON data file of the form

  {"dims": ["foo","bar"], "shape": [2,2],
   "coords": {"foo": [1,2], "bar": [3,4]},
   "values": [1,1,1,1]}

and checks it against a JSON or YAML schema definition. Violations are
reported on stderr (or as JSON on stdout with --json) and the command
exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level: slog.LevelDebug,
			}))
			slog.SetDefault(logger)

			s, err := schemafile.Load(schemaPath)
			if err != nil {
				return fmt.Errorf("load schema: %w", err)
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load data: %w", err)
			}
			arr, err := dense.DecodeJSON(raw)
			if err != nil {
				return fmt.Errorf("decode data: %w", err)
			}

			err = s.Validate(cmd.Context(), arr)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			iss, ok := dimschema.AsIssues(err)
			if !ok {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(iss); encErr != nil {
					return encErr
				}
				return errors.New("validation failed")
			}
			for _, it := range iss {
				logger.Error(it.Message, "code", it.Code, "path", it.Path)
			}
			return errors.New("validation failed")
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema definition file (JSON or YAML)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit violations as JSON on stdout")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
