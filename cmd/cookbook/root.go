package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bradykim7/cookbook/internal/models"
	"github.com/bradykim7/cookbook/internal/render"
	"github.com/bradykim7/cookbook/internal/seed"
	"github.com/bradykim7/cookbook/internal/shell"
	"github.com/bradykim7/cookbook/internal/storage"
	"github.com/bradykim7/cookbook/pkg/config"
	"github.com/bradykim7/cookbook/pkg/logger"
)

// app is the state shared by every subcommand once the root has run
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	data   *storage.RecipeData
	view   *render.Renderer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:          "cookbook",
		Short:        "Browse a personal recipe catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.Bool("hide-optional", cfg.HideOptionalDirections, "hide optional directions")
	flags.String("seed-html", cfg.SeedHTMLPath, "HTML page with extra recipes to load at start-up")
	flags.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newShellCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	level, _ := flags.GetString("log-level")
	seedHTML, _ := flags.GetString("seed-html")
	hideOptional, _ := flags.GetBool("hide-optional")

	log, err := logger.New("cookbook", logger.Options{
		Level:   level,
		Dir:     a.cfg.LogDir,
		Console: a.stderr,
	})
	if err != nil {
		return err
	}
	a.log = log

	sources := []seed.Source{seed.BuiltinSource{}}
	if seedHTML != "" {
		sources = append(sources, seed.NewHTMLSource(seedHTML, log))
	}
	recipes, err := seed.LoadAll(cmd.Context(), sources...)
	if err != nil {
		log.Error("Failed to load seed recipes", zap.Error(err))
		return err
	}

	a.data = storage.NewRecipeData(log, recipes...)
	a.view = render.New(a.stdout, render.Theme{
		Foreground: a.cfg.ListTextColor,
		Background: a.cfg.ListBackgroundColor,
	}, render.Options{HideOptionalDirections: hideOptional})

	log.Debug("Catalog ready", zap.Int("recipes", a.data.Len()), zap.Bool("hide_optional", hideOptional))
	return nil
}

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally for one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title := "All recipes"
			recipes := a.data.Recipes()
			if category != "" {
				c, err := models.ParseCategory(category)
				if err != nil {
					return err
				}
				title = string(c) + " recipes"
				recipes = a.data.RecipesFor(c)
			}
			_, err := io.WriteString(a.stdout, a.view.List(title, a.entries(recipes)))
			return err
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Breakfast, Lunch, Dinner or Dessert")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number|name>",
		Short: "Show one recipe",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := a.find(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, a.view.Recipe(recipe))
			return err
		},
	}
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Browse and edit the catalog interactively; favorites and edits last for the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := shell.NewRegistry(a.cfg.CommandPrefix, a.log)
			shell.NewRecipeCommands(a.data, a.view, a.log).Register(reg)
			fmt.Fprintf(a.stdout, "Type %shelp for commands, quit to leave\n", a.cfg.CommandPrefix)
			return reg.Run(cmd.Context(), a.stdin, a.stdout)
		},
	}
}

// find resolves a 1-based position or a case-insensitive recipe name
func (a *app) find(query string) (models.Recipe, error) {
	if n, err := strconv.Atoi(query); err == nil {
		return a.data.At(n - 1)
	}
	for _, r := range a.data.Recipes() {
		if strings.EqualFold(r.MainInformation.Name, query) {
			return r, nil
		}
	}
	return models.Recipe{}, fmt.Errorf("%q: %w", query, storage.ErrNotFound)
}

func (a *app) entries(recipes []models.Recipe) []render.Entry {
	out := make([]render.Entry, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, render.Entry{Position: a.data.Index(r) + 1, Recipe: r})
	}
	return out
}
