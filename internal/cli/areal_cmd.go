package cli

import (
	"fmt"
	"strings"

	"github.com/gartenlabs/lifegarden/internal/cli/formatter"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/spf13/cobra"
)

func newArealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areal",
		Short: "Manage garden areals",
	}

	cmd.AddCommand(
		newArealListCmd(app),
		newArealAddCmd(app),
		newArealRemoveCmd(app),
	)

	return cmd
}

func newArealListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List areals",
		RunE: func(cmd *cobra.Command, args []string) error {
			garden, err := app.Garden.GetGarden(cmd.Context())
			if err != nil {
				return err
			}
			if len(garden) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No areals yet. Try 'lifegarden seed' or 'lifegarden areal add'."))
				return nil
			}

			rows := make([][]string, 0, len(garden))
			for _, entry := range garden {
				a := entry.Areal
				rows = append(rows, []string{
					a.ID,
					a.Name,
					fmt.Sprintf("%s/%s", a.VerticalPos, a.HorizontalPos),
					string(a.Size),
					fmt.Sprintf("%d", len(entry.Plants)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "POSITION", "SIZE", "PLANTS"}, rows))
			return nil
		},
	}
}

// slugify derives a stable areal ID from its display name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func newArealAddCmd(app *App) *cobra.Command {
	var id, horizontal, vertical, size string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an areal",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if name == "" {
				return fmt.Errorf("areal name is required")
			}
			if id == "" {
				id = slugify(name)
			}

			a := &domain.Areal{
				ID:            id,
				Name:          name,
				HorizontalPos: domain.HorizontalPos(horizontal),
				VerticalPos:   domain.VerticalPos(vertical),
				Size:          domain.ArealSize(size),
			}

			if err := app.Garden.CreateAreal(cmd.Context(), a); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created areal %s %s\n",
				formatter.Bold(a.Name), formatter.Dim(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Areal ID (default: slug of the name)")
	cmd.Flags().StringVar(&horizontal, "hpos", "", "Horizontal position (left, center, right)")
	cmd.Flags().StringVar(&vertical, "vpos", "", "Vertical position (top, middle, bottom)")
	cmd.Flags().StringVar(&size, "size", "", "Areal size (small, medium, large)")

	return cmd
}

func newArealRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an areal and all its plants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !force {
				garden, err := app.Garden.GetGarden(ctx)
				if err != nil {
					return err
				}
				for _, entry := range garden {
					if entry.Areal.ID == args[0] && len(entry.Plants) > 0 {
						return fmt.Errorf("areal %q still has %d plants, pass --force to remove them too",
							args[0], len(entry.Plants))
					}
				}
			}

			if err := app.Garden.DeleteAreal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed areal %s\n", formatter.Bold(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even when the areal still has plants")

	return cmd
}
