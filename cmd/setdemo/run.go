package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirrezaask/setadt/dump"
	"github.com/amirrezaask/setadt/env"
	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/logging"
	"github.com/amirrezaask/setadt/set"
	"github.com/amirrezaask/setadt/tracing"
)

func run(ctx context.Context, out io.Writer, c *config) error {
	if err := logging.Init(c.logging()); err != nil {
		return err
	}
	if c.Trace {
		shutdown, err := tracing.Init(os.Stderr)
		if err != nil {
			return errors.Wrap(err, "cannot initialize tracing")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("cannot flush spans", "err", err)
			}
		}()
	}

	show := func(name string, s set.Set[string]) {
		if c.Dump {
			dump.Set(out, name, s)
		}
	}

	fmt.Fprintln(out, "Store filters simulation")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "1. Available brands (linked)")
	brands := set.NewLinked("Nike", "Adidas", "Puma")
	fmt.Fprintf(out, "initial brands: %s\n", brands)
	_ = brands.Add("Zara")
	fmt.Fprintf(out, "after adding Zara: %s\n", brands)
	_, _ = brands.Remove("Puma")
	fmt.Fprintf(out, "after removing Puma: %s\n", brands)
	show("brands", brands)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "2. Available sizes (bounded, capacity %d)\n", c.SizesCapacity)
	sizes, err := set.NewBounded[string](c.SizesCapacity)
	if err != nil {
		return err
	}
	if err := sizes.Replace("S", "M", "L"); err != nil {
		fmt.Fprintf(out, "cannot set initial sizes: %s\n", err)
	}
	fmt.Fprintf(out, "initial sizes: %s\n", sizes)
	for _, size := range []string{"XL", "XXL", "XXXL"} {
		if err := sizes.Add(size); err != nil {
			var ce *set.CapacityExceededError
			if !errors.As(err, &ce) {
				return err
			}
			fmt.Fprintf(out, "cannot add %s: %s\n", size, err)
			continue
		}
		fmt.Fprintf(out, "after adding %s: %s\n", size, sizes)
	}
	show("sizes", sizes)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "3. Favourite filters (persistent, %s backing)\n", c.Backing)
	s, opts, closeSink, err := openSink(ctx, c)
	if err != nil {
		return errors.Wrap(err, "cannot open %s backing", c.Backing)
	}
	defer closeSink()
	favourites := set.OpenPersistent[string](ctx, s, opts...)
	seed := env.ParseCommaSeparatedAsSet(c.Favourites)
	if err := favourites.ReplaceContext(ctx, seed.Elements()...); err != nil {
		return err
	}
	fmt.Fprintf(out, "favourite filters: %s\n", favourites)
	if err := favourites.AddContext(ctx, "discount:50%"); err != nil {
		return err
	}
	fmt.Fprintf(out, "after adding discount:50%%: %s\n", favourites)
	if _, err := favourites.RemoveContext(ctx, "size:M"); err != nil {
		return err
	}
	fmt.Fprintf(out, "after removing size:M: %s\n", favourites)
	fmt.Fprintf(out, "stored in %s\n", s)
	show("favourites", favourites)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "4. Search combining filters (red ∩ size M ∩ on sale)")
	red := set.NewLinked("product_001", "product_002", "product_005")
	sizeM := set.NewLinked("product_002", "product_003", "product_005")
	onSale := set.NewLinked("product_002", "product_004", "product_005")
	result := set.IntersectAll[string](red, sizeM, onSale)
	fmt.Fprintf(out, "red products: %v\n", red.Elements())
	fmt.Fprintf(out, "size M products: %v\n", sizeM.Elements())
	fmt.Fprintf(out, "on sale: %v\n", onSale.Elements())
	fmt.Fprintf(out, "search result: %v\n", result.Elements())
	show("search result", result)

	return nil
}
