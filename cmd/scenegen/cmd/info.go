package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show scene statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.runner().Inspect()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scene:    %s\n", a.cfg.Scene.Path)
			fmt.Fprintf(out, "Lines:    %d\n", s.Lines)
			fmt.Fprintf(out, "Comments: %d\n", s.Comments)
			fmt.Fprintf(out, "Entities: %d\n", s.Entities)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %-20s %d\n", "Dummies", s.Dummies)
			fmt.Fprintf(out, "  %-20s %d\n", "Numbered", s.NumberedDummies)
			fmt.Fprintf(out, "  %-20s %d\n", "Max index", s.MaxDummyIndex)
			fmt.Fprintf(out, "  %-20s %d\n", "VideoDummies", s.VideoDummies)
			fmt.Fprintf(out, "  %-20s %d\n", "Rigidbodies", s.Rigidbodies)
			fmt.Fprintf(out, "  %-20s %d\n", "Missing rigidbody", s.MissingRigidbody)
			fmt.Fprintf(out, "  %-20s %d\n", "Missing transform", s.MissingTransform)
			return nil
		},
	}
}
