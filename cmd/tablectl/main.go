// Command tablectl works with container conversion fixture files: validate
// and run case suites, or apply a single bridge operation to a container
// document and print the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/comalice/tablex"
	"github.com/comalice/tablex/internal/fixture"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tablectl",
		Short:         "Run and inspect container bridge fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newConvertCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <suite.yaml|dir>...",
		Short: "Validate and execute fixture suites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []*fixture.File
			for _, arg := range args {
				info, err := os.Stat(arg)
				if err != nil {
					return err
				}
				if info.IsDir() {
					dir, err := fixture.LoadDir(arg)
					if err != nil {
						return err
					}
					files = append(files, dir...)
					continue
				}
				f, err := fixture.Load(arg)
				if err != nil {
					return err
				}
				files = append(files, f)
			}

			failed := 0
			for _, f := range files {
				for i := range f.Cases {
					c := &f.Cases[i]
					if err := c.Run(); err != nil {
						failed++
						fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %s: %v\n", f.Suite, c.Name, err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "ok   %s: %s\n", f.Suite, c.Name)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d case(s) failed", failed)
			}
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var op string
	cmd := &cobra.Command{
		Use:   "convert <container.yaml>",
		Short: "Apply one bridge operation to a container document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var doc fixture.Document
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("yaml unmarshal %s: %w", args[0], err)
			}
			if err := doc.Validate(); err != nil {
				return err
			}
			in, err := doc.Build()
			if err != nil {
				return err
			}

			var out tablex.Container
			switch op {
			case fixture.OpAsObject:
				out = tablex.AsObject(in)
			case fixture.OpAsMap:
				out = tablex.AsMap(in)
			case fixture.OpAsSet:
				out, err = tablex.AsSet(in)
			case fixture.OpAsArray:
				out, err = tablex.AsArray(in)
			default:
				return fmt.Errorf("unknown op %q", op)
			}
			if err != nil {
				return err
			}

			res, err := yaml.Marshal(fixture.FromContainer(out))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(res))
			return nil
		},
	}
	cmd.Flags().StringVar(&op, "op", fixture.OpAsMap, "bridge operation: asObject, asMap, asSet, or asArray")
	return cmd
}
