package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracted sessions",
	Long:  `Extract sessions from all configured sources and list them with metadata.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, _, err := runPipeline()
		if err != nil {
			return err
		}

		if len(result.Sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		sessions := result.Sessions
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].TimestampIso > sessions[j].TimestampIso
		})

		fmt.Println(headerStyle.Render(fmt.Sprintf("Sessions (%d)", len(sessions))))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tAGENT\tPROJECT\tMESSAGES\tUPDATED")
		for _, s := range sessions {
			project := s.Metadata.ProjectName
			if project == "" {
				project = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				idStyle.Render(shortID(s.ID)),
				s.AgentType,
				project,
				countStyle.Render(fmt.Sprintf("%d", len(s.Messages))),
				dateStyle.Render(s.TimestampIso),
			)
		}
		return w.Flush()
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(listCmd)
}
