// Command mangle transforms strings for security testing: case mutation,
// encodings, homoglyphs, injection payload shaping and more. Run with a
// single argument to randomize its capitalization, or name a mode first:
//
//	mangle leetspeak "password"
//	mangle b64 "hello"
//	mangle ssti-fw jinja2 "7*7"
//	mangle --list-modes
//	mangle serve
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manglekit/mangle/pkg/config"
	"github.com/manglekit/mangle/pkg/registry"
	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/server"
)

const defaultMode = "random"

type cliOutput struct {
	Mode   string `json:"mode"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		asJSON    bool
		seed      uint64
		listModes bool
	)

	root := &cobra.Command{
		Use:           "mangle [mode] [input...]",
		Short:         "String transformation tool for security testing",
		Version:       server.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listModes {
				printModes(cmd)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("input required; see --help")
			}

			mode, input, arg, err := parseArgs(args)
			if err != nil {
				return err
			}

			source := rng.New()
			if cmd.Flags().Changed("seed") {
				source = rng.NewSeeded(seed)
			}

			output, err := registry.Get().Apply(source, mode, input, arg)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(cliOutput{Mode: mode, Input: input, Output: output})
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	root.Flags().BoolVar(&asJSON, "json", false, "emit {mode, input, output} as JSON")
	root.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible randomized output")
	root.Flags().BoolVar(&listModes, "list-modes", false, "list every transformation and exit")
	root.Flags().BoolVar(&listModes, "list", false, "alias for --list-modes")
	root.Flags().MarkHidden("list")

	root.AddCommand(newServeCmd())
	return root
}

// parseArgs maps positional arguments onto mode, input and selector. A
// single argument naming a generator mode (one that ignores its input,
// like random-user-agent) runs that mode; any other single argument is
// input for the default mode. Selector-taking modes read the selector
// first: mangle ssti-fw <framework> <template>.
func parseArgs(args []string) (mode, input, arg string, err error) {
	if len(args) == 1 {
		if t, ok := registry.Get().Resolve(args[0]); ok && !t.ReadsInput {
			return args[0], "", "", nil
		}
		return defaultMode, args[0], "", nil
	}

	mode = args[0]
	t, ok := registry.Get().Resolve(mode)
	if !ok {
		return "", "", "", fmt.Errorf("unknown transformation %q; run --list-modes", mode)
	}
	rest := args[1:]
	if t.ApplyArg != nil {
		if len(rest) < 2 {
			return "", "", "", fmt.Errorf("%s requires a %s and an input", t.Name, t.ArgName)
		}
		return mode, strings.Join(rest[1:], " "), rest[0], nil
	}
	return mode, strings.Join(rest, " "), "", nil
}

func printModes(cmd *cobra.Command) {
	reg := registry.Get()
	out := cmd.OutOrStdout()
	for _, fam := range reg.Families() {
		fmt.Fprintf(out, "%s:\n", fam)
		for _, t := range reg.ByFamily(fam) {
			name := t.Name
			if len(t.Aliases) > 0 {
				name += " (" + strings.Join(t.Aliases, ", ") + ")"
			}
			fmt.Fprintf(out, "  %-44s %s\n", name, t.Description)
		}
	}
	fmt.Fprintf(out, "\n%d transformations\n", reg.Count())
}

func newServeCmd() *cobra.Command {
	var configPath string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP transformation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return server.New(cfg).Listen()
		},
	}
	serve.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return serve
}
