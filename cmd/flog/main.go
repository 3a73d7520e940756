// Command flog is a small terminal front end over the FLog client SDK,
// handy for poking at a deployment without the mobile app.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	flog "github.com/dangolsanat/FLog"
)

func main() {
	initLogger()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func initLogger() {
	level := zerolog.InfoLevel
	if os.Getenv("FLOG_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flog",
		Short:         "FLog food-diary client",
		Long:          "Query and mutate a FLog deployment from the terminal. Connection settings come from FLOG_* environment variables.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFeedCmd(), newAddCmd(), newDeleteCmd(), newProfileCmd())
	return root
}

func newClient() (*flog.Client, error) {
	cfg, err := flog.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return flog.NewFromConfig(cfg)
}

func parseMode(s string) (flog.FeedMode, error) {
	switch s {
	case "personal":
		return flog.FeedPersonal, nil
	case "all":
		return flog.FeedAll, nil
	case "random":
		return flog.FeedRandom, nil
	default:
		return 0, fmt.Errorf("unknown feed mode %q (want personal, all or random)", s)
	}
}

func newFeedCmd() *cobra.Command {
	var (
		mode   string
		search string
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch and print a feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMode(mode)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			feed := flog.NewFeed(client, m)
			defer func() { _ = feed.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := feed.Search(ctx, search); err != nil {
				return err
			}
			for _, e := range feed.Entries() {
				printEntry(cmd, e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "personal", "feed mode: personal, all or random")
	cmd.Flags().StringVar(&search, "search", "", "free-text filter (personal mode only)")
	return cmd
}

func newAddCmd() *cobra.Command {
	var (
		title       string
		description string
		mealType    string
		ingredients []string
		photoPath   string
		mealDate    string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a food entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			mt := flog.MealType(mealType)
			if !mt.Valid() {
				return fmt.Errorf("unknown meal type %q", mealType)
			}
			when := time.Now().UTC()
			if mealDate != "" {
				t, err := time.Parse(time.RFC3339, mealDate)
				if err != nil {
					return fmt.Errorf("parse meal date: %w", err)
				}
				when = t
			}
			var photo []byte
			if photoPath != "" {
				b, err := os.ReadFile(photoPath)
				if err != nil {
					return fmt.Errorf("read photo: %w", err)
				}
				photo = b
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			feed := flog.NewFeed(client, flog.FeedPersonal)
			defer func() { _ = feed.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			err = feed.AddEntry(ctx, flog.AddEntryInput{
				Title:       title,
				Description: description,
				MealType:    mt,
				Ingredients: ingredients,
				Photo:       photo,
				MealDate:    when,
			})
			if err != nil {
				return err
			}
			for _, e := range feed.Entries() {
				printEntry(cmd, e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringVar(&description, "description", "", "entry description")
	cmd.Flags().StringVar(&mealType, "meal", "snack", "meal type: breakfast, brunch, lunch, dinner or snack")
	cmd.Flags().StringSliceVar(&ingredients, "ingredient", nil, "ingredient (repeatable)")
	cmd.Flags().StringVar(&photoPath, "photo", "", "path to a JPEG to attach")
	cmd.Flags().StringVar(&mealDate, "date", "", "meal date, RFC 3339 (default now)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a food entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			feed := flog.NewFeed(client, flog.FeedPersonal)
			defer func() { _ = feed.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := feed.DeleteEntry(ctx, flog.FoodEntry{ID: args[0]}); err != nil {
				return err
			}
			cmd.Println("deleted", args[0])
			return nil
		},
	}
	return cmd
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show (creating if needed) this device's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			p, err := flog.NewProfileManager(client).Ensure(ctx)
			if err != nil {
				return err
			}
			cmd.Printf("%s\t%s\tcreated %s\n", p.ID, p.Username, p.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func printEntry(cmd *cobra.Command, e flog.FoodEntry) {
	cmd.Printf("%s\t%s\t%s\t%s\t[%s]\n",
		e.MealDate.Format("2006-01-02 15:04"),
		e.MealType,
		e.ID,
		e.Title,
		strings.Join(e.Ingredients, ", "),
	)
}
