package cli

import (
	"fmt"
	"strings"

	"github.com/Halkcyon/transunico/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the transunico command with one subcommand per
// variant.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts.withDefaults()}

	root := &cobra.Command{
		Use:   "transunico",
		Short: "Copy text as Unicode lookalike characters",
		Long: `transunico translates its arguments into Unicode lookalike characters
(Fraktur, full-width, monospace, small caps or a custom table) and
places the result on the system clipboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.opts.Out)
	root.SetErr(a.opts.Err)
	a.addGlobalFlags(root)

	root.AddCommand(
		a.frakturCommand("fraktur"),
		a.variantCommand("full", "fullwidth"),
		a.variantCommand("mono", "monospace"),
		a.variantCommand("smol", "smallcaps"),
		a.customCommand(),
		a.pasteCommand(),
		a.versionCommand(),
	)
	return root
}

// NewVariantCommand returns a standalone command for a single variant, as
// used by the fraktur, full, mono and smol binaries.
func NewVariantCommand(name string, opts Options) *cobra.Command {
	a := &app{opts: opts.withDefaults()}

	var cmd *cobra.Command
	if name == "fraktur" {
		cmd = a.frakturCommand(name)
	} else {
		cmd = a.variantCommand(name)
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Version = a.opts.Version
	cmd.SetOut(a.opts.Out)
	cmd.SetErr(a.opts.Err)
	a.addGlobalFlags(cmd)
	return cmd
}

func (a *app) variantCommand(name string, aliases ...string) *cobra.Command {
	v, ok := translate.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("cli: unknown variant %q", name))
	}

	cmd := &cobra.Command{
		Use:     name + " [text...]",
		Aliases: aliases,
		Short:   "Copy text as " + v.Short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.copyTranslated(cmd, args, v)
		},
	}
	// Flags end at the first word of text, so later words may start with "-".
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) frakturCommand(name string) *cobra.Command {
	var bold bool
	regular, _ := translate.Lookup("fraktur")
	boldVariant, _ := translate.Lookup("fraktur-bold")

	cmd := &cobra.Command{
		Use:   name + " [text...]",
		Short: "Copy text as " + regular.Short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bold {
				return a.copyTranslated(cmd, args, boldVariant)
			}
			return a.copyTranslated(cmd, args, regular)
		},
	}
	cmd.Flags().BoolVarP(&bold, "bold", "b", false, "use bold Fraktur")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) customCommand() *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "custom --table <file> [text...]",
		Short: "Copy text translated through a YAML table",
		Long: `Copy text translated through a YAML table of single-character mappings:

  name: greek
  map:
    a: α
    b: β`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := translate.LoadTableFile(tablePath)
			if err != nil {
				return err
			}
			return a.copyTranslated(cmd, args, translate.Custom(table))
		},
	}
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "YAML translation table")
	_ = cmd.MarkFlagRequired("table")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) pasteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paste",
		Short: "Print the current clipboard text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, owner, err := a.setup(cmd)
			if err != nil {
				return err
			}
			text, err := owner.Clipboard()
			if err != nil {
				return err
			}
			fmt.Fprint(a.opts.Out, text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(a.opts.Out)
			}
			return nil
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.opts.Out, "transunico v%s\n", a.opts.Version)
		},
	}
}
