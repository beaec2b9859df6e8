package research

import (
	// 外部依赖
	"fmt"
	"os"
	"text/tabwriter"

	cobra "github.com/spf13/cobra"

	// 内部引用
	app "github.com/scienceol/labdesk/internal/app"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:          "research",
		Short:        "doctor research projects and research labs",
		SilenceUsage: true,
	}
	root.AddCommand(newProjects(), newEquipment(), newLabs())
	return root
}

func newProjects() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:  "projects",
		Long: "list my research projects with derived status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			projects, err := a.Research.Projects(logger.WithRequestID(cmd.Context()), search)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLAB\tSTART\tEND\tSTATUS")
			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Lab, p.StartDate, p.EndDate, p.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "substring filter")
	return cmd
}

func newEquipment() *cobra.Command {
	return &cobra.Command{
		Use:  "equipment",
		Long: "advanced equipment view: available rows plus the maintenance backlog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			resp, err := a.Research.AdvancedEquipment(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}

			if resp.MaintenanceCount > 0 {
				fmt.Printf("%d equipment item(s) currently under maintenance\n", resp.MaintenanceCount)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTATUS\tLAB")
			for _, eq := range resp.Equipment {
				labName := ""
				if eq.Lab != nil {
					labName = eq.Lab.LabName
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", eq.EquipmentName, eq.Status, labName)
			}
			return w.Flush()
		},
	}
}

func newLabs() *cobra.Command {
	return &cobra.Command{
		Use:  "labs",
		Long: "list the doctor-restricted research labs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			labs, err := a.Research.ResearchLabs(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCAPACITY")
			for _, lab := range labs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", lab.LabID, lab.LabName, lab.Location, lab.Capacity)
			}
			return w.Flush()
		},
	}
}
