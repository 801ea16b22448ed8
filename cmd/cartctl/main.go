// Command cartctl browses the storefront catalog and edits the shared cart.
//
//	cartctl [--addr URL] products [--category NAME]
//	cartctl product ID
//	cartctl categories
//	cartctl cart
//	cartctl add ID [QTY]
//	cartctl set ID QTY
//	cartctl remove ID
//	cartctl clear
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"storefront/client"

	flag "github.com/spf13/pflag"
)

func main() {
	fs := flag.NewFlagSet("cartctl", flag.ContinueOnError)
	addr := fs.String("addr", envOr("STOREFRONT_URL", "http://localhost:8080"), "storefront base URL")
	category := fs.StringP("category", "c", "", "only list products of this category")
	timeout := fs.Duration("timeout", 10*time.Second, "overall request timeout")
	fs.SetInterspersed(true)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	api, err := client.New(*addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cli := &cli{api: api, cart: client.NewCartStore(api), out: os.Stdout}
	if err := cli.run(ctx, fs.Args(), *category); err != nil {
		fmt.Fprintln(os.Stderr, "cartctl:", err)
		os.Exit(1)
	}
}

type cli struct {
	api  *client.Client
	cart *client.CartStore
	out  io.Writer
}

func (c *cli) run(ctx context.Context, args []string, category string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "products":
		prods, err := c.api.Products(ctx, category)
		if err != nil {
			return err
		}
		renderProducts(c.out, prods)
		return nil
	case "product":
		if len(args) != 1 {
			return fmt.Errorf("usage: product ID")
		}
		prod, err := c.api.Product(ctx, args[0])
		if err != nil {
			return err
		}
		renderProduct(c.out, prod)
		return nil
	case "categories":
		cats, err := c.api.Categories(ctx)
		if err != nil {
			return err
		}
		for _, cat := range cats {
			fmt.Fprintln(c.out, cat)
		}
		return nil
	case "cart":
		if err := c.cart.FetchCart(ctx); err != nil {
			return err
		}
	case "add":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: add ID [QTY]")
		}
		qty := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("quantity must be a positive number")
			}
			qty = n
		}
		if err := c.cart.Add(ctx, args[0], qty); err != nil {
			return err
		}
	case "set":
		if len(args) != 2 {
			return fmt.Errorf("usage: set ID QTY")
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number")
		}
		if err := c.cart.UpdateQuantity(ctx, args[0], qty); err != nil {
			return err
		}
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("usage: remove ID")
		}
		if err := c.cart.Remove(ctx, args[0]); err != nil {
			return err
		}
	case "clear":
		if err := c.cart.FetchCart(ctx); err != nil {
			return err
		}
		for _, line := range c.cart.Items() {
			if err := c.cart.Remove(ctx, line.Id); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	renderCart(c.out, c.cart)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
