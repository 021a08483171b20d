package main

import (
	"fmt"
	"strconv"
	"strings"

	"homeat/internal/domain/entity"
	"homeat/internal/errors"
	"homeat/internal/usecase"

	"github.com/spf13/cobra"
)

func newRecipesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List, create and delete recipes",
	}

	cmd.AddCommand(
		newRecipesListCmd(a),
		newRecipesCreateCmd(a),
		newRecipesDeleteCmd(a),
	)

	return cmd
}

func newRecipesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the recipes owned by --owner",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string, svc *services) error {
			ctx := cmd.Context()

			recipes, err := svc.Recipes.ListForUser(ctx, a.identity())
			if err != nil {
				return errors.Wrap(err, "load recipes")
			}
			if len(recipes) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No recipes saved yet.")

				return err
			}

			rows := make([][]string, 0, len(recipes))
			for _, recipe := range recipes {
				favorite, err := svc.Favorites.IsFavorite(ctx, recipe.IDValue())
				if err != nil {
					return errors.Wrap(err, "read favorites")
				}
				rows = append(rows, []string{
					strconv.FormatInt(recipe.IDValue(), 10),
					recipe.Title,
					strconv.Itoa(len(recipe.Ingredients)),
					strconv.Itoa(recipe.LikeCount()),
					strconv.Itoa(len(recipe.Reviews)),
					favoriteMark(favorite),
				})
			}

			return printTable(cmd.OutOrStdout(), []string{"ID", "Title", "Ingredients", "Likes", "Reviews", "Favorite"}, rows)
		}),
	}
}

func newRecipesCreateCmd(a *app) *cobra.Command {
	var (
		input       usecase.RecipeInput
		ingredients []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe owned by --owner",
		Example: `  homeatctl --owner user-1 recipes create --title Pfannkuchen \
    --ingredient Mehl=200g --ingredient Milch=300ml --ingredient Salz`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string, svc *services) error {
			rows, err := parseIngredients(ingredients)
			if err != nil {
				return err
			}
			input.Ingredients = rows

			created, err := svc.Recipes.Create(cmd.Context(), a.identity(), &input)
			if err != nil {
				return errors.Wrap(err, "save failed")
			}
			if !created.Persisted() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %q\n", input.Title)

				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %d: %s\n", created.IDValue(), created.Title)

			return err
		}),
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "recipe title")
	cmd.Flags().StringVar(&input.Description, "description", "", "recipe description")
	cmd.Flags().StringVar(&input.ImageURL, "image-url", "", "external image URL")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "ingredient as name=quantity, repeatable")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newRecipesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of the recipes owned by --owner",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string, svc *services) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := svc.Recipes.Delete(cmd.Context(), a.identity(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d\n", id)

			return err
		}),
	}
}

// parseIngredients reads name=quantity pairs. The quantity may be left out.
func parseIngredients(values []string) ([]entity.Ingredient, error) {
	rows := make([]entity.Ingredient, 0, len(values))
	for _, value := range values {
		name, quantity, _ := strings.Cut(value, "=")
		if strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("invalid ingredient %q: name is required", value)
		}
		rows = append(rows, entity.Ingredient{Name: name, Quantity: quantity})
	}

	return rows, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id %q", arg)
	}

	return id, nil
}

func favoriteMark(favorite bool) string {
	if favorite {
		return "★"
	}

	return ""
}
