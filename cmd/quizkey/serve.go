package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/quizkey/quizkey/pkg/serve"
	"github.com/quizkey/quizkey/pkg/shell"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as streaming server for host integrations",
	Long: `Run Quizkey as a long-lived streaming server that accepts process and
reset requests via stdin and writes views via stdout using NDJSON format.

This mode is designed for hosts that embed the extractor, such as the
browser shell's native fallback. The process serves one session until
stdin closes or SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	session := shell.NewSession(serveLogger(cmd))

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	srv := serve.NewServer(session, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}

// serveLogger writes session debug lines to stderr when --verbose is set.
// stdout stays reserved for the NDJSON protocol.
func serveLogger(cmd *cobra.Command) shell.DebugLogger {
	if !verbose {
		return shell.NoopLogger{}
	}
	return stderrLogger{cmd: cmd}
}

type stderrLogger struct {
	cmd *cobra.Command
}

func (l stderrLogger) Log(format string, args ...interface{}) {
	l.cmd.PrintErrf(format+"\n", args...)
}
