package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/iksnae/sessionsync/internal"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Show aggregated per-project activity",
	Long:  `Extract sessions from all configured sources and show session counts and last activity per project.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, _, err := runPipeline()
		if err != nil {
			return err
		}

		if len(result.Projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Projects (%d)", len(result.Projects))))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH\tSESSIONS\tLAST ACTIVITY")
		for _, p := range result.Projects {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				p.Name,
				p.Path,
				countStyle.Render(fmt.Sprintf("%d", totalSessions(p))),
				dateStyle.Render(p.LastActivityIso),
			)
		}
		return w.Flush()
	},
}

func totalSessions(p *internal.ProjectInfo) int {
	total := 0
	for _, n := range p.SessionCounts {
		total += n
	}
	return total
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
