package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub.
type execIface interface {
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Sell(ctx context.Context) error
	Delete(ctx context.Context) error
	Share(ctx context.Context) error
	Settings(ctx context.Context) error
	Defaults(ctx context.Context) error
	Toggle(ctx context.Context, key string) error
}

const helpText = "Available commands: (l)ist, show, add, edit, sell, delete, share, settings, defaults, toggle <use|hide|prohibit>, exit"

// runREPL reads one command per line from reader and dispatches it to a.
// Errors returned by handlers are printed and the loop continues. It exits
// on EOF, "exit"/"quit" or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("inv %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			report(a.List(ctx))

		case "show":
			report(a.Show(ctx))

		case "add":
			report(a.Add(ctx))

		case "edit":
			report(a.Edit(ctx))

		case "sell":
			report(a.Sell(ctx))

		case "delete":
			report(a.Delete(ctx))

		case "share":
			report(a.Share(ctx))

		case "settings":
			report(a.Settings(ctx))

		case "defaults":
			report(a.Defaults(ctx))

		case "toggle":
			if len(args) != 1 {
				printlnFn("Usage: toggle <use|hide|prohibit>")
				continue
			}
			report(a.Toggle(ctx, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err == nil || errors.Is(err, ErrNoInput) {
		return
	}
	printlnFn("Error:", err)
}
