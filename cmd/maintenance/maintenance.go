package maintenance

import (
	// 外部依赖
	"fmt"
	"os"
	"text/tabwriter"

	cobra "github.com/spf13/cobra"

	// 内部引用
	app "github.com/scienceol/labdesk/internal/app"
	coreMaintenance "github.com/scienceol/labdesk/pkg/core/maintenance"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:          "maintenance",
		Short:        "technician maintenance queue",
		SilenceUsage: true,
	}
	root.AddCommand(newQueue(), newStart(), newComplete())
	return root
}

func newQueue() *cobra.Command {
	return &cobra.Command{
		Use:  "queue",
		Long: "list my assigned maintenance requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			resp, err := a.Maintenance.Queue(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}
			printQueue(resp)
			return nil
		},
	}
}

func newStart() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:  "start",
		Long: "move a pending request to in progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			resp, err := a.Maintenance.Start(logger.WithRequestID(cmd.Context()), id)
			if err != nil {
				return err
			}
			printQueue(resp)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "maintenance request id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newComplete() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:  "complete",
		Long: "move an in-progress request to completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			resp, err := a.Maintenance.Complete(logger.WithRequestID(cmd.Context()), id)
			if err != nil {
				return err
			}
			printQueue(resp)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "maintenance request id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func printQueue(resp *coreMaintenance.QueueResp) {
	fmt.Printf("pending: %d  in progress: %d  completed: %d\n", resp.Pending, resp.InProgress, resp.Completed)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tREQUESTED\tSTATUS\tDESCRIPTION")
	for _, req := range resp.Requests {
		name := ""
		if req.Equipment != nil {
			name = req.Equipment.EquipmentName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", req.MaintenanceID, name, req.RequestDate, req.Status, req.Description)
	}
	_ = w.Flush()
}
