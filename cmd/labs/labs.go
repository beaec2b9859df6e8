package labs

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
		Use:          "labs",
		Short:        "browse lab rooms and their equipment",
		SilenceUsage: true,
	}
	root.AddCommand(newList(), newEquipment(), newSelect())
	return root
}

func newList() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:  "list",
		Long: "list lab rooms, optionally filtered by name, location or instructor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			labs, err := a.Dashboard.Labs(logger.WithRequestID(cmd.Context()), search)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCAPACITY\tINSTRUCTOR\tRESEARCH")
			for _, lab := range labs {
				research := ""
				if lab.Research {
					research = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
					lab.LabID, lab.LabName, lab.Location, lab.Capacity, lab.InstructorName, research)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "substring filter")
	return cmd
}

func newEquipment() *cobra.Command {
	var labID int64

	cmd := &cobra.Command{
		Use:  "equipment",
		Long: "list the equipment of one lab, grouped by name with availability counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			groups, err := a.Dashboard.LabEquipment(logger.WithRequestID(cmd.Context()), labID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLAB\tAVAILABLE")
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t%s\t%d / %d\n", g.Name, g.Lab, g.Available, g.Total)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int64Var(&labID, "lab", 0, "lab id")
	_ = cmd.MarkFlagRequired("lab")
	return cmd
}

func newSelect() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:  "select",
		Long: "hand an equipment item off to the reservation form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			if err := a.Dashboard.SelectEquipment(logger.WithRequestID(cmd.Context()), name); err != nil {
				return err
			}
			fmt.Printf("selected %q for reservation\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "equipment name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
