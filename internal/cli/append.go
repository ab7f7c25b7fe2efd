package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
)

func newAppendCmd() *cobra.Command {
	var (
		item        int64
		contentPath string
		page        keypoints.PageContext
	)

	cmd := &cobra.Command{
		Use:   "append",
		Short: "Apply the automatic append to an item's content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			content, err := readContent(cmd, contentPath)
			if err != nil {
				return err
			}

			out := a.service.AppendToContent(cmd.Context(), keypoints.AppendRequest{
				ItemID:  item,
				Content: content,
				Page:    page,
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().Int64Var(&item, "item", 0, "item id")
	cmd.Flags().StringVar(&contentPath, "content", "", "file with the item's content, '-' for stdin")
	cmd.Flags().BoolVar(&page.Singular, "singular", true, "page shows a single item")
	cmd.Flags().BoolVar(&page.InMainLoop, "in-loop", true, "content is rendered in the main loop")
	cmd.Flags().BoolVar(&page.Admin, "admin", false, "page is an admin screen")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newExpandCmd() *cobra.Command {
	var (
		item        int64
		contentPath string
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Replace [keypoints] shortcodes in content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			content, err := readContent(cmd, contentPath)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.service.ExpandShortcodes(cmd.Context(), item, content))
			return err
		},
	}

	cmd.Flags().Int64Var(&item, "item", 0, "current item id")
	cmd.Flags().StringVar(&contentPath, "content", "-", "file with content, '-' for stdin")

	return cmd
}

func newAssetsCmd() *cobra.Command {
	var (
		item        int64
		contentPath string
		singular    bool
	)

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Report whether a page needs the widget assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			content, err := readContent(cmd, contentPath)
			if err != nil {
				return err
			}
			enqueue := a.service.ShouldEnqueueAssets(cmd.Context(), keypoints.AssetRequest{
				ItemID:   item,
				Content:  content,
				Singular: singular,
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), enqueue)
			return err
		},
	}

	cmd.Flags().Int64Var(&item, "item", 0, "item id")
	cmd.Flags().StringVar(&contentPath, "content", "", "file with the page content, '-' for stdin")
	cmd.Flags().BoolVar(&singular, "singular", true, "page shows a single item")

	return cmd
}
