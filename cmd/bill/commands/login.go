package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
	"github.com/ledgerline-io/bill-client/pkg/billclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username string
		orgID    string
		devKey   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Bill.com",
		Long:  "Verify credentials against the Bill.com gateway and print the session details",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := clientConfig()

			if username != "" {
				config.Username = username
			}

			if orgID != "" {
				config.OrganizationID = orgID
			}

			if devKey != "" {
				config.DevKey = devKey
			}

			reader := bufio.NewReader(os.Stdin)

			if config.Username == "" {
				fmt.Print("Username: ")

				input, _ := reader.ReadString('\n')
				config.Username = strings.TrimSpace(input)
			}

			if config.OrganizationID == "" {
				fmt.Print("Organization ID: ")

				input, _ := reader.ReadString('\n')
				config.OrganizationID = strings.TrimSpace(input)
			}

			if config.DevKey == "" {
				fmt.Print("Developer key: ")

				input, _ := reader.ReadString('\n')
				config.DevKey = strings.TrimSpace(input)
			}

			if config.Password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("%w: %w", constants.ErrPasswordFromStdin, err)
				}

				config.Password = string(bytePassword)

				fmt.Println()
			}

			client, err := billclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			ctx := context.Background()

			session, err := client.Login(ctx)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(session)
			case OutputFormatYAML:
				return renderYAML(session)
			default:
				printSession(config, session)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Bill.com username")
	cmd.Flags().StringVar(&orgID, "org-id", "", "Bill.com organization ID")
	cmd.Flags().StringVar(&devKey, "dev-key", "", "Bill.com developer key")

	return cmd
}

func printSession(config *bill.Config, session *bill.Session) {
	fmt.Printf("Logged in to %s\n", config.Environment)
	fmt.Printf("  Organization: %s\n", session.OrganizationID)
	fmt.Printf("  User:         %s\n", session.UserID)
	fmt.Printf("  Session:      %s\n", constants.MaskedSecret)
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Bill.com",
		Long:  "Login with the configured credentials and immediately terminate the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.EnsureLoggedIn(ctx)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			err = client.Logout(ctx)
			if err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
