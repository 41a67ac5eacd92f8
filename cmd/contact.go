package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pinecoastbbq/pinecoast/internal/contact"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact API",
	Long:  `Submits a contact form message to base_url (or --url) the same way the website does, and prints the resulting status.`,
	RunE:  runContact,
}

func init() {
	contactCmd.Flags().String("url", "", "contact API base URL (overrides base_url)")
	contactCmd.Flags().String("name", "", "your name")
	contactCmd.Flags().String("email", "", "your email address")
	contactCmd.Flags().String("message", "", "message to send")
	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	base, _ := cmd.Flags().GetString("url")
	if base == "" {
		base = cfg.BaseURL
	}
	if base == "" {
		base = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	message, _ := cmd.Flags().GetString("message")

	flow := contact.NewFlow(base, &http.Client{Timeout: cfg.RequestTimeout})
	defer flow.Close()
	flow.SetName(name)
	flow.SetEmail(email)
	flow.SetMessage(message)

	if verbose {
		fmt.Printf("%s -> %s\n", contact.MsgSending, flow.URL())
	}
	st := flow.Submit(context.Background())
	fmt.Println(st.Message)
	if st.Kind != contact.KindSuccess {
		return fmt.Errorf("submission failed")
	}
	return nil
}
