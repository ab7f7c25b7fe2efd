package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
)

func newRenderCmd() *cobra.Command {
	var (
		item        int64
		contentPath string
	)
	attrs := make(map[string]*string)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an item's widget as a manual placement would",
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

			req := keypoints.ShortcodeRequest{
				ItemID:        item,
				CurrentItemID: item,
				Attrs:         make(map[string]string),
				Content:       content,
			}
			for key, value := range attrs {
				if *value != "" {
					req.Attrs[key] = *value
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.service.Shortcode(cmd.Context(), req))
			return err
		},
	}

	cmd.Flags().Int64Var(&item, "item", 0, "item id")
	cmd.Flags().StringVar(&contentPath, "content", "", "file with enclosed content, '-' for stdin")
	for _, opt := range []struct{ key, flag, usage string }{
		{keypoints.KeyView, "view", "above|below|popup"},
		{keypoints.KeyMode, "mode", "light|dark"},
		{keypoints.KeyTitle, "title", "widget title"},
		{keypoints.KeyButtonStyle, "button-style", "popup button style class"},
		{keypoints.KeyButtonColor, "button-color", "popup button background color"},
		{keypoints.KeyListType, "list-type", "ordered|unordered"},
	} {
		attrs[opt.key] = cmd.Flags().String(opt.flag, "", opt.usage)
	}
	_ = cmd.MarkFlagRequired("item")

	return cmd
}
