package main

import (
	"fmt"
	"os"
	"strings"

	"homeat/internal/errors"

	"github.com/spf13/cobra"
)

func newShoppingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Build the shopping list from favorited recipes",
	}

	cmd.AddCommand(
		newShoppingShowCmd(a),
		newShoppingExportCmd(a),
	)

	return cmd
}

func newShoppingShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the shopping list of --owner",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string, svc *services) error {
			list, err := svc.Shopping.ForUser(cmd.Context(), a.identity())
			if err != nil {
				return errors.Wrap(err, "build shopping list")
			}
			if list.Empty() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Your shopping list is empty. Mark recipes as favorites to fill it.")

				return err
			}

			rows := make([][]string, 0, len(list.Items))
			for _, item := range list.Items {
				rows = append(rows, []string{
					item.Name,
					strings.Join(item.Quantities, ", "),
					strings.Join(item.Recipes, ", "),
				})
			}

			return printTable(cmd.OutOrStdout(), []string{"Ingredient", "Quantities", "Recipes"}, rows)
		}),
	}
}

func newShoppingExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the shopping list of --owner as a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string, svc *services) error {
			file, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "create output file")
			}

			if err := svc.Shopping.Export(cmd.Context(), a.identity(), file); err != nil {
				_ = file.Close()
				_ = os.Remove(out)

				return errors.Wrap(err, "export shopping list")
			}
			if err := file.Close(); err != nil {
				return errors.Wrap(err, "close output file")
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Shopping list written to %s\n", out)

			return err
		}),
	}

	cmd.Flags().StringVarP(&out, "out", "o", "einkaufsliste.xlsx", "output file")

	return cmd
}
