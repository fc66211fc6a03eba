package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "quizkey",
	Short: "Quizkey - answer key recovery for hashed quizzes",
	Long: `Quizkey recovers the answer key of a multiple-choice quiz whose correct
answers are stored as bcrypt hashes. For each question it re-hashes the
option plaintexts and reports which slot verifies against the stored hash.

Quiz documents are JSON objects with a "questions" array; each question has
up to four option slots (option1..option4) and an "answer" hash field.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
