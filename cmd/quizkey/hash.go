package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var hashCost int

var hashCmd = &cobra.Command{
	Use:   "hash [plaintext]",
	Short: "Generate the bcrypt answer hash for an option plaintext",
	Long: `Generate the bcrypt hash to store in a question's "answer" field.

With no argument, the plaintext is prompted without echo when stdin is a
terminal, or read as one line from stdin otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().IntVar(&hashCost, "cost", bcrypt.DefaultCost, "bcrypt cost factor (4-31)")
}

func runHash(cmd *cobra.Command, args []string) error {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	plaintext, err := hashPlaintext(cmd, args)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return fmt.Errorf("generating hash: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(hash))
	return nil
}

func hashPlaintext(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if stdin, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(stdin.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Option text: ")
		b, err := term.ReadPassword(int(stdin.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading plaintext: %w", err)
		}
		return string(b), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading plaintext: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
