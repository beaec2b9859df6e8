package reserve

import (
	// 外部依赖
	"fmt"
	"os"
	"text/tabwriter"

	cobra "github.com/spf13/cobra"

	// 内部引用
	app "github.com/scienceol/labdesk/internal/app"
	coreReservation "github.com/scienceol/labdesk/pkg/core/reservation"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:          "reserve",
		Short:        "equipment and lab reservations",
		SilenceUsage: true,
	}
	root.AddCommand(newEquipment(), newLab(), newList(), newLabList())
	return root
}

func newEquipment() *cobra.Command {
	var (
		name, date, start, end, purpose string
		teamSize                        int
	)

	cmd := &cobra.Command{
		Use:  "equipment",
		Long: "reserve an equipment item; falls back to the item selected in the lab browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			ctx := logger.WithRequestID(cmd.Context())

			if name == "" {
				if selected, ok := a.Reservation.TakeSelectedEquipment(ctx); ok {
					name = selected
				}
			}
			if name == "" {
				return fmt.Errorf("no equipment named; use --name or `labs select`")
			}

			resp, err := a.Reservation.ReserveEquipment(ctx, &coreReservation.ReserveEquipmentReq{
				EquipmentName: name,
				Date:          date,
				StartTime:     start,
				EndTime:       end,
				Purpose:       purpose,
				TeamSize:      teamSize,
			})
			if err != nil {
				return err
			}

			fmt.Println(resp.Message)
			printViews(resp.MyReservations)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "equipment name")
	cmd.Flags().StringVar(&date, "date", "", "YYYY-MM-DD")
	cmd.Flags().StringVar(&start, "start", "", "HH:mm")
	cmd.Flags().StringVar(&end, "end", "", "HH:mm")
	cmd.Flags().StringVar(&purpose, "purpose", "", "purpose of the reservation")
	cmd.Flags().IntVar(&teamSize, "team-size", 1, "team size")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newLab() *cobra.Command {
	var (
		labID                     int64
		date, start, end, purpose string
	)

	cmd := &cobra.Command{
		Use:  "lab",
		Long: "reserve a lab room (doctor role)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			resp, err := a.Reservation.ReserveLab(logger.WithRequestID(cmd.Context()), &coreReservation.ReserveLabReq{
				LabID:     labID,
				Date:      date,
				StartTime: start,
				EndTime:   end,
				Purpose:   purpose,
			})
			if err != nil {
				return err
			}

			fmt.Println(resp.Message)
			return nil
		},
	}
	cmd.Flags().Int64Var(&labID, "lab", 0, "lab id")
	cmd.Flags().StringVar(&date, "date", "", "YYYY-MM-DD")
	cmd.Flags().StringVar(&start, "start", "", "HH:mm")
	cmd.Flags().StringVar(&end, "end", "", "HH:mm")
	cmd.Flags().StringVar(&purpose, "purpose", "", "purpose of the reservation")
	_ = cmd.MarkFlagRequired("lab")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newList() *cobra.Command {
	return &cobra.Command{
		Use:  "list",
		Long: "list my equipment reservations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			views, err := a.Reservation.MyReservations(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}
			printViews(views)
			return nil
		},
	}
}

func newLabList() *cobra.Command {
	return &cobra.Command{
		Use:  "lab-list",
		Long: "list my lab reservations (doctor role)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			views, err := a.Reservation.MyLabReservations(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLAB\tDATE\tTIME\tSTATUS")
			for _, v := range views {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s - %s\t%s\n", v.ID, v.LabName, v.Date, v.StartTime, v.EndTime, v.Status)
			}
			return w.Flush()
		},
	}
}

func printViews(views []*coreReservation.ReservationView) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tDATE\tTIME\tSTATUS")
	for _, v := range views {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s - %s\t%s\n", v.ID, v.EquipmentName, v.Date, v.StartTime, v.EndTime, v.Status)
	}
	_ = w.Flush()
}
