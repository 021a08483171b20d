package main

import (
	"fmt"
	"os"
	"path/filepath"

	"homeat/internal/errors"
	"homeat/internal/util"

	"github.com/spf13/cobra"
)

func newImagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Upload and delete recipe images",
	}

	cmd.AddCommand(
		newImagesUploadCmd(a),
		newImagesDeleteCmd(a),
	)

	return cmd
}

func newImagesUploadCmd(a *app) *cobra.Command {
	var recipeID int64

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image, optionally attached to a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string, svc *services) error {
			path := args[0]

			digest, size, err := util.FileDigest(path)
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return errors.Wrap(err, "open image")
			}
			defer file.Close()

			var target *int64
			if cmd.Flags().Changed("recipe") {
				target = &recipeID
			}

			image, err := svc.Recipes.UploadImage(cmd.Context(), a.identity(), filepath.Base(path), file, target)
			if err != nil {
				return errors.Wrap(err, "upload failed")
			}

			if image == nil {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s, sha256 %s)\n",
					filepath.Base(path), util.FormatBytes(size), util.ShortDigest(digest, 12))

				return err
			}

			url := image.URL
			if url == "" {
				url = svc.Recipes.ImageURL(image.ID)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Uploaded image %d (%s, %s, sha256 %s)\n%s\n",
				image.ID, filepath.Base(path), util.FormatBytes(size), util.ShortDigest(digest, 12), url)

			return err
		}),
	}

	cmd.Flags().Int64Var(&recipeID, "recipe", 0, "recipe ID to attach the image to")

	return cmd
}

func newImagesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored image",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string, svc *services) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := svc.Recipes.DeleteImage(cmd.Context(), a.identity(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted image %d\n", id)

			return err
		}),
	}
}
