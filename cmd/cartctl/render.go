package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"storefront/client"
	"storefront/entities"
)

func renderProducts(w io.Writer, prods []entities.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSTOCK")
	for _, p := range prods {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%.2f\t%.1f (%d)\t%s\n", p.Id, p.Name, p.Category, p.Price, p.Rating, p.Reviews, stockLabel(p))
	}
	tw.Flush()
}

func renderProduct(w io.Writer, p entities.Product) {
	fmt.Fprintf(w, "%s  [%s]\n", p.Name, p.Category)
	fmt.Fprintf(w, "$%.2f  rating %.1f from %d reviews  %s\n", p.Price, p.Rating, p.Reviews, stockLabel(p))
	fmt.Fprintln(w, p.Description)
}

func renderCart(w io.Writer, cart *client.CartStore) {
	items := cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, l := range items {
		fmt.Fprintf(tw, "%s\t%s\t$%.2f\t%d\t$%s\n", l.Id, l.Name, l.Price, l.Quantity, client.LineTotal(l).StringFixed(2))
	}
	tw.Flush()

	s := cart.Summary()
	shipping := "FREE"
	if s.Shipping.IsPositive() {
		shipping = "$" + s.Shipping.StringFixed(2)
	}
	fmt.Fprintf(w, "\nSubtotal (%d items)  $%s\n", s.ItemCount, s.Subtotal.StringFixed(2))
	fmt.Fprintf(w, "Shipping             %s\n", shipping)
	fmt.Fprintf(w, "Total                $%s\n", s.GrandTotal.StringFixed(2))
}

func stockLabel(p entities.Product) string {
	if !p.InStock() {
		return "out of stock"
	}
	return fmt.Sprintf("%d in stock", p.Stock)
}
