package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/cli/output"
	"github.com/goamaan/site/pkg/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// UserAddOptions holds options for the user add command.
type UserAddOptions struct {
	Admin         bool
	Image         string
	PasswordStdin bool
}

// NewUserCommand creates the user command group.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserAddCommand())
	return cmd
}

func newUserAddCommand() *cobra.Command {
	opts := &UserAddOptions{}
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an account that can sign in",
		Long: `Create an account with a bcrypt-hashed password.

The password is prompted for on a terminal. Pass --password-stdin to read
it from the first line of standard input instead.`,
		Example: `  # Create the site admin
  site user add amaan --admin

  # Scripted
  echo "$PASSWORD" | site user add ada --password-stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserAdd(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Admin, "admin", false, "Grant admin actions (bookmarks, deleting any comment)")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Avatar image URL")
	cmd.Flags().BoolVar(&opts.PasswordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

// UserOutput is the JSON output for user add.
type UserOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

func runUserAdd(cmd *cobra.Command, name string, opts *UserAddOptions) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}

	password, err := readPassword(cmd, opts.PasswordStdin)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	u := &core.User{Name: name, Image: opts.Image, IsAdmin: opts.Admin, PasswordHash: hash}
	if err := cmdCtx.Store.CreateUser(cmd.Context(), u); err != nil {
		if errors.Is(err, core.ErrDuplicate) {
			return fmt.Errorf("user %q already exists", name)
		}
		return err
	}
	cmdCtx.Logger.Info("user created", "name", u.Name, "admin", u.IsAdmin)

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(UserOutput{ID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin})
	}
	role := "user"
	if u.IsAdmin {
		role = "admin"
	}
	r.Success(fmt.Sprintf("Created %s %s", role, u.Name))
	return nil
}

// readPassword prompts on a terminal, or reads one line when fromStdin
// is set or stdin is not a terminal.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd())) //nolint:gosec // fd fits in int
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
