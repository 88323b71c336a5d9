package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/logistics"
	"github.com/katalvlaran/lvroute/warehouse"
)

var errNoQuantity = errors.New("dispatch: --qty must be positive")

func (c *CLI) newNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "List every location and its roads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printNetwork(cmd.OutOrStdout(), c.svc.Network())
			return nil
		},
	}
}

func (c *CLI) newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Print the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := c.svc.Route(args[0], args[1])
			printRoute(cmd.OutOrStdout(), path, ok)
			return nil
		},
	}
}

func (c *CLI) newReachableCmd() *cobra.Command {
	var maxHops int
	cmd := &cobra.Command{
		Use:   "reachable [from]",
		Short: "List locations reachable from a location (default: the origin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := c.svc.Origin()
			if len(args) == 1 {
				from = args[0]
			}
			return printReachable(cmd.OutOrStdout(), c.svc.Network(), from, maxHops)
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "limit on roads travelled (0 = unlimited)")

	return cmd
}

func (c *CLI) newInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "List warehouse stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInventory(cmd.OutOrStdout(), c.svc.Warehouse())
			return nil
		},
	}
}

func (c *CLI) newDispatchCmd() *cobra.Command {
	var (
		to     string
		qty    int
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "dispatch [item]",
		Short: "Route an item from the origin and withdraw it from stock",
		Long: `Dispatch plans the shortest route from the origin to --to for the named
item, or for the highest-priority item when no name is given, then
withdraws --qty units. With --dry-run only the plan is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := ""
			if len(args) == 1 {
				item = args[0]
			}
			if qty <= 0 && !dryRun {
				return errNoQuantity
			}

			return dispatch(cmd.OutOrStdout(), c.svc, item, to, qty, dryRun)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "destination location")
	cmd.Flags().IntVar(&qty, "qty", 0, "quantity to dispatch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan without withdrawing stock")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func dispatch(w io.Writer, svc *logistics.Service, item, to string, qty int, dryRun bool) error {
	plan, err := svc.Plan(item, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Item: %s\n", plan.Item)
	fmt.Fprint(w, "Route: ")
	printRoute(w, plan.Route, true)
	if dryRun {
		warning.Fprintln(w, "Dry run: nothing dispatched")
		return nil
	}

	d, err := svc.Dispatch(plan, qty)
	if err != nil {
		return err
	}
	success.Fprintf(w, "Dispatched %d x %s to %s (ticket %s), %d left\n",
		d.Quantity, d.Item.Name, d.Destination(), d.Ticket, d.Remaining)

	return nil
}

// printNetwork writes "name: nbr(w), nbr(w)" per location in name order.
func printNetwork(w io.Writer, n *core.Network) {
	names := n.LocationNames()
	if len(names) == 0 {
		warning.Fprintln(w, "No locations")
		return
	}
	for _, name := range names {
		headline.Fprint(w, name)
		fmt.Fprint(w, ": ")
		var hops []string
		_ = n.EachNeighbor(name, func(nbr string, d int64) {
			hops = append(hops, fmt.Sprintf("%s(%d)", nbr, d))
		})
		if len(hops) == 0 {
			fmt.Fprintln(w, "No connections")
			continue
		}
		fmt.Fprintln(w, strings.Join(hops, ", "))
	}
}

// printRoute writes "A -> B -> C (distance N)" or "no route".
func printRoute(w io.Writer, p dijkstra.Path, ok bool) {
	if !ok {
		failure.Fprintln(w, "no route")
		return
	}
	fmt.Fprintf(w, "%s (distance %d)\n", strings.Join(p.Stops, " -> "), p.Distance)
}

// printReachable writes "name (N hops)" for every location reachable from
// from, nearest first.
func printReachable(w io.Writer, n *core.Network, from string, maxHops int) error {
	res, err := bfs.Walk(n, from, bfs.WithMaxHops(maxHops))
	if err != nil {
		return err
	}
	if len(res.Order) == 1 {
		warning.Fprintf(w, "Nothing reachable from %s\n", from)
		return nil
	}
	for _, name := range res.Order[1:] {
		unit := "hops"
		if res.Hops[name] == 1 {
			unit = "hop"
		}
		fmt.Fprintf(w, "%s (%d %s)\n", name, res.Hops[name], unit)
	}

	return nil
}

func printInventory(w io.Writer, wh *warehouse.Warehouse) {
	items := wh.Items()
	if len(items) == 0 {
		warning.Fprintln(w, "Warehouse is empty")
		return
	}
	for _, it := range items {
		fmt.Fprintln(w, it)
	}
}
