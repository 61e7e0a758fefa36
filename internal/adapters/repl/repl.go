// Package repl is the terminal adapter: it drives the operator command loop
// and renders inventory, receipts and diagnostics.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/house-holder/shopkeeper/internal/core"
)

// REPL is one interactive operator session over a Store.
type REPL struct {
	store  *core.Store
	prompt *linePrompt
	out    io.Writer
	errOut io.Writer
	log    *logrus.Entry
}

func New(store *core.Store, in io.Reader, out, errOut io.Writer, log *logrus.Entry) *REPL {
	return &REPL{
		store:  store,
		prompt: &linePrompt{in: bufio.NewReader(in), out: out, errOut: errOut},
		out:    out,
		errOut: errOut,
		log:    log,
	}
}

// ShowInventory implements core.View.
func (r *REPL) ShowInventory(store *core.Store) {
	printInventory(r.out, store)
}

// Noticef implements core.View. One-line diagnostics for recoverable errors.
func (r *REPL) Noticef(format string, args ...any) {
	fmt.Fprintf(r.errOut, format+"\n", args...)
}

// Run reads and dispatches commands until the operator exits. The returned
// error is always an unrecovered input failure; normal exit returns nil.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, "Shopkeeper")
	fmt.Fprintf(r.out, "%d item(s) in stock. Type 'help' for commands.\n", r.store.InventoryLen())
	fmt.Fprintln(r.out, strings.Repeat("-", 48))

	errExit := fmt.Errorf("exit")

	dispatch := func(cmd string) error {
		switch cmd {
		case "order", "o":
			return r.handleNewOrder()

		case "stock", "s":
			printInventory(r.out, r.store)

		case "add", "a":
			_, err := r.handleCreateStock()
			return err

		case "orders":
			printOrders(r.out, r.store)

		case "help", "h":
			printHelp(r.out)

		case "exit", "quit", "q":
			return errExit

		default:
			fmt.Fprintf(r.out, "Unknown command: %s  (type 'help' for all commands)\n", cmd)
		}
		return nil
	}

	for {
		input, err := r.prompt.Line("\n> ")
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}

		if err := dispatch(strings.ToLower(input)); err != nil {
			if err == errExit {
				fmt.Fprintln(r.out, "Goodbye!")
				return nil
			}
			return err
		}
	}
}
