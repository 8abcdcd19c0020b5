// Package cli defines Cobra command definitions for the leadtrack CLI.
// This file contains the root command, which launches the dashboard.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadtrack-dev/leadtrack/internal/activity"
	"github.com/leadtrack-dev/leadtrack/internal/config"
	"github.com/leadtrack-dev/leadtrack/internal/contacts"
	"github.com/leadtrack-dev/leadtrack/internal/lifecycle"
	"github.com/leadtrack-dev/leadtrack/internal/logging"
	"github.com/leadtrack-dev/leadtrack/internal/message"
	"github.com/leadtrack-dev/leadtrack/internal/session"
	"github.com/leadtrack-dev/leadtrack/internal/tui"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "leadtrack",
	Short: "Lead outreach lifecycle tracker",
	Long: `Leadtrack tracks outreach contacts through their lifecycle:
not contacted, contacted, follow-up due, follow-up sent. State lives in
a flat CSV produced by the pipeline; edits stay in the session until an
explicit save rewrites the file.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the dashboard if TTY,
		// show help otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		logger := logging.New(cfg.Logging.Level)

		store := contacts.NewStore(cfg.ContactsPath())
		list, err := store.Load()
		if err != nil {
			if errors.Is(err, contacts.ErrStoreNotFound) {
				return fmt.Errorf("no contact data found at %s; run: leadtrack pipeline", store.Path())
			}
			return err
		}

		sess := session.New(cfg.Followup.IntervalDays, cfg.Followup.SnoozeDays)

		log := activity.NewLog()
		if sink, err := activity.NewSink(".", sess.ID); err != nil {
			logger.Warn("activity sink unavailable", "error", err)
		} else {
			log.SetSink(sink)
		}
		for _, warn := range log.Rebuild(list) {
			logger.Warn("activity rebuild", "warning", warn.Error())
		}

		gen := message.NewGenerator(config.APIKey(), cfg.OpenAI.Model)
		engine := lifecycle.NewEngine(sess, log, gen)

		model := tui.NewModel(tui.Deps{
			Store:   store,
			Session: sess,
			Engine:  engine,
			Log:     log,
		}, list)
		return tui.Run(model)
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(activityCmd)
}
