// status.go implements the "leadtrack status" command showing per-company
// outreach progress.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leadtrack-dev/leadtrack/internal/config"
	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show outreach progress per company",
	Long: `Display lead counts, sent outreach and due follow-ups for every
company in the contact table.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
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

	today := time.Now()
	fmt.Println("Leadtrack Status")
	fmt.Println()

	totalSent := 0
	totalDue := 0
	for _, company := range contacts.Companies(list) {
		scoped := contacts.Apply(list, contacts.Filter{Company: company}, today)
		sent := len(contacts.Apply(scoped, contacts.Filter{Outreach: contacts.OutreachSent}, today))
		due := len(contacts.Apply(scoped, contacts.Filter{Followup: contacts.FollowupDue}, today))
		totalSent += sent
		totalDue += due

		fmt.Printf("  %-40s  %2d leads  %2d sent  %2d due\n", company, len(scoped), sent, due)
	}

	fmt.Println()
	fmt.Printf("Total: %d leads, %d sent, %d follow-ups due\n", len(list), totalSent, totalDue)
	return nil
}
