package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/projects"
)

type projectsOptions struct {
	jsonOutput bool
}

func newProjectsCmd(flags *rootFlags) *cobra.Command {
	opts := &projectsOptions{}

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			list, err := a.store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderProjectsJSON(cmd, list)
			}
			return renderProjectsTable(cmd, list)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderProjectsJSON(cmd *cobra.Command, list []projects.Project) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func renderProjectsTable(cmd *cobra.Command, list []projects.Project) error {
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects stored. Run `portfolio seed` to import the catalog.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tCATEGORY\tCOMPLETED\tIMAGES\tTECHNOLOGIES")
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", p.Slug, p.Title, p.Category, p.CompletedLabel(), len(p.Gallery), strings.Join(p.Technologies, ", "))
	}
	return w.Flush()
}
