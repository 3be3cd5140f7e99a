package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bva/business-value-calculator/internal/calculation"
	"github.com/bva/business-value-calculator/internal/config"
	"github.com/bva/business-value-calculator/internal/output"
)

func main() {
	// Optional .env for local defaults (BVA_CONFIG). Missing file is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bva",
		Short:        "Business value assessment calculator",
		Long:         "Computes the multi-year financial business case (NPV, ROI, payback) for adopting an IT operations automation solution.",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newConvertCmd(), newTemplatesCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		format     string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all scenarios for an assessment and print or write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("BVA_CONFIG")
			}
			if configPath == "" {
				return fmt.Errorf("no assessment file: pass --config or set BVA_CONFIG")
			}

			assessment, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}

			result := calculation.NewEngine().Run(assessment)

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, available: %s",
					format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			if outPath == "" {
				data, err := formatter.Format(result)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			data, err := formatter.Format(result)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "assessment file (yaml, csv or json)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, json)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a flat configuration between CSV and JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var (
				params config.Parameters
				report config.ImportReport
			)
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".csv":
				params, report = config.ImportCSV(data)
			case ".json":
				params, report = config.ImportJSON(data)
			default:
				return fmt.Errorf("unsupported input format %q", filepath.Ext(args[0]))
			}
			if !report.OK {
				return fmt.Errorf("%s", report.Message)
			}

			var out []byte
			switch strings.ToLower(filepath.Ext(args[1])) {
			case ".csv":
				out, err = config.ExportCSV(params)
			case ".json":
				out, err = config.ExportJSON(params)
			default:
				return fmt.Errorf("unsupported output format %q", filepath.Ext(args[1]))
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], out, 0644); err != nil {
				return err
			}
			cmd.Printf("%s; wrote %s\n", report.Message, args[1])
			return nil
		},
	}
	return cmd
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available industry benchmark templates",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range calculation.TemplateNames() {
				cmd.Println(name)
			}
		},
	}
}
