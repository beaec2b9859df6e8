package approvals

import (
	// 外部依赖
	"fmt"
	"os"
	"text/tabwriter"

	cobra "github.com/spf13/cobra"

	// 内部引用
	app "github.com/scienceol/labdesk/internal/app"
	coreApproval "github.com/scienceol/labdesk/pkg/core/approval"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:          "approvals",
		Short:        "instructor reservation approvals and equipment management",
		SilenceUsage: true,
	}
	root.AddCommand(newPending(), newApprove(), newReject(), newAddEquipment(), newEquipmentStatus())
	return root
}

func newPending() *cobra.Command {
	return &cobra.Command{
		Use:  "pending",
		Long: "show my labs and the pending reservation queue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			resp, err := a.Approval.Overview(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}
			printOverview(resp)
			return nil
		},
	}
}

func newApprove() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:  "approve",
		Long: "approve a pending reservation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			resp, err := a.Approval.Approve(logger.WithRequestID(cmd.Context()), id)
			if err != nil {
				return err
			}
			printOverview(resp)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "reservation id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newReject() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:  "reject",
		Long: "reject a pending reservation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			resp, err := a.Approval.Reject(logger.WithRequestID(cmd.Context()), id)
			if err != nil {
				return err
			}
			printOverview(resp)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "reservation id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newAddEquipment() *cobra.Command {
	var (
		name, status string
		labID        int64
	)

	cmd := &cobra.Command{
		Use:  "add-equipment",
		Long: "register a new equipment row, keyed by name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			if err := a.Approval.AddEquipment(logger.WithRequestID(cmd.Context()), &coreApproval.AddEquipmentReq{
				EquipmentName: name,
				Status:        status,
				LabID:         labID,
			}); err != nil {
				return err
			}
			fmt.Printf("added equipment %q\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "equipment name")
	cmd.Flags().StringVar(&status, "status", "", "initial status (default AVAILABLE)")
	cmd.Flags().Int64Var(&labID, "lab", 0, "lab id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("lab")
	return cmd
}

func newEquipmentStatus() *cobra.Command {
	var name, status string

	cmd := &cobra.Command{
		Use:  "equipment-status",
		Long: "update an equipment row's status by name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			if err := a.Approval.SetEquipmentStatus(logger.WithRequestID(cmd.Context()), name, status); err != nil {
				return err
			}
			fmt.Printf("equipment %q -> %s\n", name, status)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "equipment name")
	cmd.Flags().StringVar(&status, "status", "", "AVAILABLE|UNAVAILABLE|MAINTENANCE")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func printOverview(resp *coreApproval.OverviewResp) {
	fmt.Printf("my labs: %d, pending reservations: %d\n", len(resp.MyLabs), len(resp.Pending))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tSTUDENT\tDATE\tTIME\tDURATION")
	for _, res := range resp.Pending {
		equipment, student := "", ""
		if res.Equipment != nil {
			equipment = res.Equipment.EquipmentName
		}
		if res.Student != nil {
			student = res.Student.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%dm\n",
			res.ReservationID, equipment, student, res.Date, res.Time, res.Duration)
	}
	_ = w.Flush()
}
