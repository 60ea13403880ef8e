package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type seedOptions struct {
	file  string
	force bool
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the project catalog from YAML into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			file := opts.file
			if file == "" {
				file = a.cfg.Projects.File
			}

			n, err := a.seed(cmd.Context(), file, opts.force)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already present; use --force to overwrite")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d projects\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML catalog to import (defaults to PROJECTS_FILE, then the built-in catalog)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Replace projects already in the database")

	return cmd
}
