// activity.go implements the "leadtrack activity" command printing the
// outreach activity log.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadtrack-dev/leadtrack/internal/activity"
	"github.com/leadtrack-dev/leadtrack/internal/config"
	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the outreach activity log",
	Long: `Print the activity log rebuilt from the persisted contact table:
one line per contacted lead, in chronological order.`,
	RunE: runActivity,
}

func runActivity(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	store := contacts.NewStore(cfg.ContactsPath())
	list, err := store.Load()
	if err != nil {
		if errors.Is(err, contacts.ErrStoreNotFound) {
			return fmt.Errorf("no contact data found at %s; run: leadtrack pipeline", store.Path())
		}
		return err
	}

	log := activity.NewLog()
	for _, warn := range log.Rebuild(list) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", warn)
	}

	entries := log.Entries()
	if len(entries) == 0 {
		fmt.Println("No outreach activity yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s\n", e.Timestamp.Format(contacts.DateLayout), e.Message)
	}
	return nil
}
