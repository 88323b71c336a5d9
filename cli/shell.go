package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/logistics"
)

const prompt = "lvroute> "

var (
	errUsage   = errors.New("usage")
	errUnquote = errors.New("unterminated quote")
)

// shellCommand is one line-oriented command of the interactive session.
type shellCommand struct {
	usage string
	help  string
	nargs [2]int // min, max
	run   func(s *session, args []string) error
}

type session struct {
	svc  *logistics.Service
	out  io.Writer
	done bool
}

var shellCommands map[string]shellCommand

// shellOrder is the listing order of help.
var shellOrder = []string{
	"network", "add-location", "add-road", "remove-road", "remove-location",
	"route", "reachable", "origin", "inventory", "add-item", "dispatch", "help", "quit",
}

func init() {
	shellCommands = map[string]shellCommand{
		"network": {
			usage: "network", help: "list locations and roads", nargs: [2]int{0, 0},
			run: func(s *session, _ []string) error {
				printNetwork(s.out, s.svc.Network())
				return nil
			},
		},
		"add-location": {
			usage: "add-location NAME", help: "add a location", nargs: [2]int{1, 1},
			run: func(s *session, args []string) error {
				if err := s.svc.Network().AddLocation(args[0]); err != nil {
					return err
				}
				success.Fprintf(s.out, "Added location %s\n", args[0])
				return nil
			},
		},
		"add-road": {
			usage: "add-road FROM TO DISTANCE", help: "add or replace a road", nargs: [2]int{3, 3},
			run: func(s *session, args []string) error {
				d, err := strconv.ParseInt(args[2], 10, 64)
				if err != nil {
					return fmt.Errorf("distance %q is not a number", args[2])
				}
				if err = s.svc.Network().AddRoad(args[0], args[1], d); err != nil {
					return err
				}
				success.Fprintf(s.out, "Added road %s - %s (%d)\n", args[0], args[1], d)
				return nil
			},
		},
		"remove-road": {
			usage: "remove-road FROM TO", help: "remove a road", nargs: [2]int{2, 2},
			run: func(s *session, args []string) error {
				if err := s.svc.Network().RemoveRoad(args[0], args[1]); err != nil {
					return err
				}
				success.Fprintf(s.out, "Removed road %s - %s\n", args[0], args[1])
				return nil
			},
		},
		"remove-location": {
			usage: "remove-location NAME", help: "remove a location and its roads", nargs: [2]int{1, 1},
			run: func(s *session, args []string) error {
				if err := s.svc.Network().DeleteLocation(args[0]); err != nil {
					return err
				}
				success.Fprintf(s.out, "Removed location %s\n", args[0])
				return nil
			},
		},
		"route": {
			usage: "route FROM TO", help: "print the shortest route", nargs: [2]int{2, 2},
			run: func(s *session, args []string) error {
				path, ok := s.svc.Route(args[0], args[1])
				printRoute(s.out, path, ok)
				return nil
			},
		},
		"reachable": {
			usage: "reachable [NAME]", help: "list locations reachable from NAME or the origin", nargs: [2]int{0, 1},
			run: func(s *session, args []string) error {
				from := s.svc.Origin()
				if len(args) == 1 {
					from = args[0]
				}
				return printReachable(s.out, s.svc.Network(), from, 0)
			},
		},
		"origin": {
			usage: "origin [NAME]", help: "show or change the origin", nargs: [2]int{0, 1},
			run: func(s *session, args []string) error {
				if len(args) == 1 {
					if err := s.svc.SetOrigin(args[0]); err != nil {
						return err
					}
				}
				if o := s.svc.Origin(); o != "" {
					fmt.Fprintf(s.out, "Origin: %s\n", o)
				} else {
					warning.Fprintln(s.out, "No origin: the network is empty")
				}
				return nil
			},
		},
		"inventory": {
			usage: "inventory", help: "list warehouse stock", nargs: [2]int{0, 0},
			run: func(s *session, _ []string) error {
				printInventory(s.out, s.svc.Warehouse())
				return nil
			},
		},
		"add-item": {
			usage: "add-item NAME PRIORITY QUANTITY", help: "stock an item (priority 1-10)", nargs: [2]int{3, 3},
			run: func(s *session, args []string) error {
				prio, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("priority %q is not a number", args[1])
				}
				qty, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("quantity %q is not a number", args[2])
				}
				it, err := s.svc.Warehouse().AddItem(args[0], prio, qty)
				if err != nil {
					return err
				}
				success.Fprintf(s.out, "Stocked %s\n", it)
				return nil
			},
		},
		"dispatch": {
			usage: "dispatch DESTINATION QUANTITY [ITEM]", help: "route and withdraw an item (highest priority if ITEM is omitted)", nargs: [2]int{2, 3},
			run: func(s *session, args []string) error {
				qty, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity %q is not a number", args[1])
				}
				item := ""
				if len(args) == 3 {
					item = args[2]
				}
				return dispatch(s.out, s.svc, item, args[0], qty, false)
			},
		},
		"help": {
			usage: "help", help: "show this list", nargs: [2]int{0, 0},
			run: func(s *session, _ []string) error {
				fmt.Fprintln(s.out, `Quote names containing spaces: add-location "North Gate"`)
				for _, name := range shellOrder {
					sc := shellCommands[name]
					fmt.Fprintf(s.out, "  %-38s %s\n", sc.usage, sc.help)
				}
				return nil
			},
		},
		"quit": {
			usage: "quit", help: "leave the shell", nargs: [2]int{0, 0},
			run: func(s *session, _ []string) error {
				s.done = true
				return nil
			},
		},
	}
	shellCommands["exit"] = shellCommands["quit"]
}

func (c *CLI) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), c.svc)
		},
	}
}

// runShell reads commands from in until quit or end of input.
// Command errors are printed and the session continues.
func runShell(in io.Reader, out io.Writer, svc *logistics.Service) error {
	s := &session{svc: svc, out: out}
	scanner := bufio.NewScanner(in)
	headline.Fprintln(out, "lvroute shell. Type 'help' for commands.")

	for !s.done {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		fields, err := splitTokens(scanner.Text())
		if err != nil {
			failure.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if err := s.exec(fields[0], fields[1:]); err != nil {
			failure.Fprintf(out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (s *session) exec(name string, args []string) error {
	sc, ok := shellCommands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try 'help')", name)
	}
	if len(args) < sc.nargs[0] || len(args) > sc.nargs[1] {
		return fmt.Errorf("%w: %s", errUsage, sc.usage)
	}

	return sc.run(s, args)
}

// splitTokens splits line on whitespace. A double-quoted run is one token
// with the quotes removed, so "" is an empty token.
func splitTokens(line string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		inToken bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inToken = true
		case !inQuote && unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if inQuote {
		return nil, errUnquote
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}

	return tokens, nil
}
