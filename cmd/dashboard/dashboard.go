package dashboard

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
		Use:          "dashboard",
		Short:        "role dashboards",
		SilenceUsage: true,
	}
	root.AddCommand(newStudent(), newCatalog())
	return root
}

func newStudent() *cobra.Command {
	return &cobra.Command{
		Use:  "student",
		Long: "student overview: labs, reservations, shared tools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			board, err := a.Dashboard.Student(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}

			fmt.Printf("labs: %d total, %d available\n", board.TotalLabs, board.AvailableLabs)
			fmt.Printf("my reservations: %d (%d pending, %d approved)\n",
				len(board.MyReservations), board.PendingCount, board.ApprovedCount)
			fmt.Printf("my shared tools: %d\n", len(board.MySharedTools))
			return nil
		},
	}
}

func newCatalog() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:  "catalog",
		Long: "equipment catalog grouped by name with availability counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			groups, err := a.Dashboard.EquipmentCatalog(logger.WithRequestID(cmd.Context()), search)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tLAB\tAVAILABLE")
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d / %d\n", g.Name, g.Category, g.Lab, g.Available, g.Total)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "substring filter")
	return cmd
}
