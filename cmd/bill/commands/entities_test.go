package commands_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-io/bill-client/cmd/bill/commands"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

func TestNewEntityCommands(t *testing.T) {
	t.Parallel()

	groups := commands.NewEntityCommands()
	require.Len(t, groups, 8)

	byName := make(map[string]*cobra.Command, len(groups))
	for _, group := range groups {
		byName[group.Name()] = group
	}

	expected := []string{
		"vendors",
		"bills",
		"invoices",
		"customers",
		"payments",
		"credit-memos",
		"chart-of-accounts",
		"accounting-classes",
	}
	for _, name := range expected {
		require.Contains(t, byName, name)
	}

	// Every entity group carries the full CRUD and lifecycle verbs.
	for name, group := range byName {
		names := subcommandNames(group)
		assert.Contains(t, names, "list", "entity %s", name)
		assert.Contains(t, names, "get", "entity %s", name)
		assert.Contains(t, names, "create", "entity %s", name)
		assert.Contains(t, names, "update", "entity %s", name)
		assert.Contains(t, names, "archive", "entity %s", name)
		assert.Contains(t, names, "restore", "entity %s", name)
	}
}

func TestEntityCommandAliases(t *testing.T) {
	t.Parallel()

	groups := commands.NewEntityCommands()

	aliases := make(map[string][]string, len(groups))
	for _, group := range groups {
		aliases[group.Name()] = group.Aliases
	}

	assert.Equal(t, []string{"vendor"}, aliases["vendors"])
	assert.Equal(t, []string{"credit-memo", "memos"}, aliases["credit-memos"])
	assert.Equal(t, []string{"coa", "accounts"}, aliases["chart-of-accounts"])
}

func TestEntityListCommandFlags(t *testing.T) {
	t.Parallel()

	groups := commands.NewEntityCommands()

	for _, group := range groups {
		listCmd, _, err := group.Find([]string{"list"})
		require.NoError(t, err)

		assert.NotNil(t, listCmd.Flags().Lookup("max"), "entity %s", group.Name())
		assert.NotNil(t, listCmd.Flags().Lookup("page"), "entity %s", group.Name())
		assert.NotNil(t, listCmd.Flags().Lookup("filter"), "entity %s", group.Name())
		assert.NotNil(t, listCmd.Flags().Lookup("sort"), "entity %s", group.Name())
	}
}

func TestEntityCreateCommandRequiresFile(t *testing.T) {
	t.Parallel()

	groups := commands.NewEntityCommands()

	for _, group := range groups {
		for _, verb := range []string{"create", "update"} {
			cmd, _, err := group.Find([]string{verb})
			require.NoError(t, err)

			flag := cmd.Flags().Lookup("from-file")
			require.NotNil(t, flag, "entity %s %s", group.Name(), verb)
			assert.Equal(t, "true", flag.Annotations[cobra.BashCompOneRequiredFlag][0])
		}
	}
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("username"))
	assert.NotNil(t, cmd.Flags().Lookup("org-id"))
	assert.NotNil(t, cmd.Flags().Lookup("dev-key"))
	// Passwords never travel through argv.
	assert.Nil(t, cmd.Flags().Lookup("password"))
}

func TestNewLogoutCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLogoutCommand()
	assert.Equal(t, "logout", cmd.Use)
}

func TestNewValidateCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewValidateCommand()
	assert.Equal(t, "validate", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("sample"))
}
