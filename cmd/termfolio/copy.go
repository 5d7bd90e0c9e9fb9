package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renato0307/termfolio/internal/commands"
	"github.com/renato0307/termfolio/internal/types"
)

func newCopyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy email|phone|TEXT...",
		Short: "Copy the contact email, phone number or any text to the clipboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No renderer here: OSC 52 goes to stderr so it reaches the
			// terminal even when stdout is piped.
			appCtx, err := buildAppContext(opts, os.Stderr)
			if err != nil {
				return err
			}

			var exec commands.ExecuteFunc
			switch {
			case len(args) == 1 && args[0] == "email":
				exec = commands.CopyEmailCommand()
			case len(args) == 1 && args[0] == "phone":
				exec = commands.CopyPhoneCommand()
			default:
				exec = commands.CopyTextCommand()
			}

			return report(cmd, exec(commands.CommandContext{App: appCtx, Args: strings.Join(args, " ")})())
		},
	}
}

func newOpenCmd(opts *options) *cobra.Command {
	registry := commands.NewRegistry()
	targets := registry.Names(commands.CategoryLink)

	return &cobra.Command{
		Use:               "open " + strings.Join(targets, "|"),
		Short:             "Open a profile link or the mail client",
		Args:              cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:         targets,
		ValidArgsFunction: completeLinks(registry),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := buildAppContext(opts, os.Stderr)
			if err != nil {
				return err
			}

			action := registry.Get(args[0], commands.CategoryLink)
			if action == nil {
				return fmt.Errorf("unknown target %q", args[0])
			}
			msg := action.Execute(commands.CommandContext{App: appCtx})()
			if msg == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", args[0])
				return nil
			}
			return report(cmd, msg)
		},
	}
}

// completeLinks offers link targets ranked by fuzzy match against the
// partially typed word.
func completeLinks(registry *commands.Registry) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var out []string
		for _, c := range registry.Filter(toComplete, commands.CategoryLink) {
			out = append(out, c.Name+"\t"+c.Description)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// report prints a toast message, returning an error for the error variant.
func report(cmd *cobra.Command, msg any) error {
	toast, ok := msg.(types.ToastMsg)
	if !ok {
		return nil
	}
	if toast.Variant == types.VariantError {
		return fmt.Errorf("%s", toast.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), toast.Message)
	return nil
}

