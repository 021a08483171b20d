package main

import (
	"fmt"
	"strconv"

	"homeat/internal/errors"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Show and toggle favorites on this device",
	}

	cmd.AddCommand(
		newFavoritesListCmd(a),
		newFavoritesToggleCmd(a),
	)

	return cmd
}

func newFavoritesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorited recipe IDs, with titles when --owner is given",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string, svc *services) error {
			ctx := cmd.Context()

			ids, err := svc.Favorites.FavoriteIDs(ctx)
			if err != nil {
				return errors.Wrap(err, "read favorites")
			}
			if len(ids) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")

				return err
			}

			titles := make(map[int64]string)
			if identity := a.identity(); identity.Authenticated {
				recipes, err := svc.Recipes.ListForUser(ctx, identity)
				if err != nil {
					return errors.Wrap(err, "load recipes")
				}
				for _, recipe := range recipes {
					titles[recipe.IDValue()] = recipe.Title
				}
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				rows = append(rows, []string{strconv.FormatInt(id, 10), titles[id]})
			}

			return printTable(cmd.OutOrStdout(), []string{"ID", "Title"}, rows)
		}),
	}
}

func newFavoritesToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark or unmark one of the recipes owned by --owner as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string, svc *services) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			recipe, err := svc.Recipes.Get(ctx, a.identity(), id)
			if err != nil {
				return err
			}

			result, err := svc.Favorites.ToggleFavorite(ctx, recipe)
			if err != nil {
				return errors.Wrap(err, "toggle favorite")
			}
			if result == nil {
				return errors.Errorf("recipe %d has not been saved", id)
			}

			state := "no longer a favorite"
			if result.Favorite {
				state = "now a favorite"
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Recipe %d is %s (likes: %d)\n", id, state, recipe.LikeCount()); err != nil {
				return err
			}
			if !result.Confirmed {
				_, err := fmt.Fprintln(out, "The like counter could not be updated on the server.")

				return err
			}

			return nil
		}),
	}
}
