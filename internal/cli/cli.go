// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the visitgen command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"code.hybscloud.com/visit/internal/gen"
	"code.hybscloud.com/visit/internal/logger"
)

// EnvPrefix prefixes environment variables that override global flags,
// e.g. VISITGEN_CONFIG or VISITGEN_VERBOSE.
const EnvPrefix = "VISITGEN"

// inline holds the flags of the single-registry mode.
type inline struct {
	name   string
	types  []string
	accept string
	output string
}

func (in *inline) enabled() bool { return in.name != "" }

// validate rejects inline-only flags given without --name, which would
// otherwise be dropped in favor of the config file.
func (in *inline) validate() error {
	if in.enabled() {
		return nil
	}
	var set []string
	if len(in.types) > 0 {
		set = append(set, "--types")
	}
	if in.accept != "" {
		set = append(set, "--accept")
	}
	if in.output != "" {
		set = append(set, "--output")
	}
	if len(set) > 0 {
		return errors.WithHint(
			errors.Wrapf(gen.ErrInvalidConfig, "%s requires --name", strings.Join(set, ", ")),
			"pass --name to generate from flags, or set these in the config file",
		)
	}
	return nil
}

func (in *inline) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.name, "name", "", "Registry name (enables inline mode)")
	cmd.Flags().StringSliceVar(&in.types, "types", nil, "Comma-separated type names, in registry order")
	cmd.Flags().StringVar(&in.accept, "accept", "", "Accept method name (default: Accept<name>)")
	cmd.Flags().StringVarP(&in.output, "output", "o", "", "Generated file name (default: "+gen.DefaultOutput+")")
}

// NewRootCmd returns the visitgen command tree. Each call returns fresh
// commands and a fresh viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "visitgen",
		Short: "Generate compile-time checked visitors",
		Long: `visitgen generates visitor interfaces, accept methods and dispatch
tables for closed sets of Go types.

Registries are read from visitgen.yaml, or given inline with --name and
--types. Every registered type must be a named, non-interface type of the
target package.

Examples:
  visitgen generate                               # Use ./visitgen.yaml
  visitgen generate --name Shape --types Circle,Square
  visitgen check                                  # Fail if visit_gen.go is stale
  visitgen list                                   # Show registries`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(v.GetBool("json"), v.GetBool("verbose")); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", gen.DefaultConfigFile, "Config file, relative to --dir")
	pf.StringP("dir", "C", ".", "Directory to resolve the package from")
	pf.Bool("json", false, "Log as JSON")
	pf.BoolP("verbose", "v", false, "Log debug output")
	for _, name := range []string{"config", "dir", "json", "verbose"} {
		// Flag names are static, so binding cannot fail.
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(newGenerateCmd(v), newCheckCmd(v), newListCmd(v))
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var in inline
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated visitor file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), v, &in)
			if err != nil {
				return err
			}
			path, err := gen.Generate(plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pterm.Green("✓ Generated"), path)
			return nil
		},
	}
	in.register(cmd)
	return cmd
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	var in inline
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the generated visitor file is up to date",
		Long: `Render the visitor file in memory and compare it with the file on disk.

Exit codes:
  0 - up to date
  1 - missing, stale, or the check failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), v, &in)
			if err != nil {
				return err
			}
			if err := gen.Check(plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pterm.Green("✓ Up to date"), plan.OutputPath())
			return nil
		},
	}
	in.register(cmd)
	return cmd
}

func newListCmd(v *viper.Viper) *cobra.Command {
	var in inline
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registries, indices and types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), v, &in)
			if err != nil {
				return err
			}
			return printPlan(cmd.OutOrStdout(), plan)
		},
	}
	in.register(cmd)
	return cmd
}

// resolvePlan loads the config, from flags in inline mode or from the config file
// otherwise, and resolves it against the target package.
func resolvePlan(ctx context.Context, v *viper.Viper, in *inline) (*gen.Plan, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	dir := v.GetString("dir")

	var (
		cfg *gen.Config
		err error
	)
	if in.enabled() {
		cfg, err = gen.Inline(".", in.output, in.name, in.types, in.accept)
	} else {
		path := v.GetString("config")
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		logger.Logger.Debugw("loading config", "file", path)
		cfg, err = gen.LoadConfig(path)
	}
	if err != nil {
		return nil, err
	}
	return gen.Resolve(ctx, dir, cfg)
}

func printPlan(w io.Writer, p *gen.Plan) error {
	data := pterm.TableData{{"Registry", "Index", "Type", "Method", "Accept"}}
	for _, r := range p.Registries {
		for _, e := range r.Entries {
			data = append(data, []string{r.Name, strconv.Itoa(e.Index), e.Type, e.Method, r.Accept})
		}
	}
	fmt.Fprintf(w, "%s %s → %s\n", pterm.LightCyan("Package:"), p.PackagePath, p.Output)
	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
}
