package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		profile string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract screenshots, then render the album pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			res, err := runExtract(cmd.Context(), a, out, profile, strict)
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), a, out, res.Records)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Steam profile URL (defaults to the manifest)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Skip the build if any screenshot failed")
	return cmd
}
