// Command passfield checks password strength interactively, from stdin, or
// over HTTP.
//
//	passfield check [-config file] [-theme-dir dir] [-min medium] [-attempts 3]
//	passfield check -stdin < passwords.txt
//	passfield serve [-addr :8080] [-base /] [-config file] [-theme-dir dir]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const usage = `usage: passfield <command> [flags]

commands:
  check   classify passwords from the terminal or stdin
  serve   run the HTTP strength endpoint
`

var errUsage = errors.New("passfield: invalid usage")

func main() {
	// .env is optional and only fills unset variables
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatalf("passfield: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}
	env := envFromOS()

	switch args[0] {
	case "check":
		return runCheck(ctx, args[1:], env, stdin, stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], env, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return errUsage
	}
}
