package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddDummiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add-dummies",
		Aliases: []string{"append"},
		Short:   "Append Dummy entities after the highest existing index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runner().Append()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found max Dummy index: %d\n", res.MaxIndex)
			fmt.Fprintf(out, "Appending %d dummies starting from %d...\n", res.Count, res.Start)
			if res.DryRun {
				fmt.Fprintf(out, "Dry run. Would append %d dummies.\n", res.Count)
				return nil
			}
			fmt.Fprintf(out, "Successfully appended %d dummies.\n", res.Count)
			return nil
		},
	}
	a.flags.RegisterCount(cmd.Flags())
	return cmd
}

func newAddRigidbodiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add-rigidbodies",
		Aliases: []string{"insert"},
		Short:   "Insert the capsule rigidbody into Dummy blocks that lack one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runner().Insert()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. %s %d Rigidbody lines.\n", verb(res.DryRun, "Added", "Would add"), res.Count)
			return nil
		},
	}
}

func newRandomizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "randomize",
		Short: "Renumber Dummy entities and re-sample their transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runner().Randomize()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. %s %d Dummy entities.\n", verb(res.DryRun, "Processed", "Would process"), res.Count)
			return nil
		},
	}
}

func newRemoveRigidbodiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove-rigidbodies",
		Aliases: []string{"strip"},
		Short:   "Remove every line carrying the capsule rigidbody",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runner().Remove()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. %s %d lines.\n", verb(res.DryRun, "Removed", "Would remove"), res.Count)
			return nil
		},
	}
}

func verb(dryRun bool, done, would string) string {
	if dryRun {
		return would
	}
	return done
}
