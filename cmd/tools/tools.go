package tools

import (
	// 外部依赖
	"fmt"
	"os"
	"text/tabwriter"

	cobra "github.com/spf13/cobra"

	// 内部引用
	app "github.com/scienceol/labdesk/internal/app"
	coreSharing "github.com/scienceol/labdesk/pkg/core/sharing"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:          "tools",
		Short:        "student equipment sharing",
		SilenceUsage: true,
	}
	root.AddCommand(newList(), newShare(), newDelete())
	return root
}

func newList() *cobra.Command {
	var (
		search string
		mine   bool
	)

	cmd := &cobra.Command{
		Use:  "list",
		Long: "browse shared tools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			scope := coreSharing.ScopeAll
			if mine {
				scope = coreSharing.ScopeMine
			}
			views, err := a.Sharing.Browse(logger.WithRequestID(cmd.Context()), &coreSharing.BrowseReq{
				Scope:  scope,
				Search: search,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tOWNER\tCONTACT\tMINE")
			for _, v := range views {
				mineMark := ""
				if v.Mine {
					mineMark = "*"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.Name, v.OwnerName, v.OwnerEmail, mineMark)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "substring filter")
	cmd.Flags().BoolVar(&mine, "mine", false, "only my items")
	return cmd
}

func newShare() *cobra.Command {
	var name, description, imageURL string

	cmd := &cobra.Command{
		Use:  "share",
		Long: "offer a tool for peer borrowing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}

			view, err := a.Sharing.Create(logger.WithRequestID(cmd.Context()), &coreSharing.CreateReq{
				ToolName:    name,
				Description: description,
				ImageURL:    imageURL,
			})
			if err != nil {
				return err
			}

			fmt.Printf("shared %q (id %d)\n", view.Name, view.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "tool name")
	cmd.Flags().StringVar(&description, "description", "", "tool description")
	cmd.Flags().StringVar(&imageURL, "image", "", "image url")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDelete() *cobra.Command {
	var toolID int64

	cmd := &cobra.Command{
		Use:  "delete",
		Long: "remove a shared tool I own",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			if err := a.Sharing.Delete(logger.WithRequestID(cmd.Context()), toolID); err != nil {
				return err
			}
			fmt.Printf("deleted tool %d\n", toolID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&toolID, "id", 0, "tool id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
