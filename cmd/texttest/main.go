// Command texttest prints the fixture inventory day by day. Its output is the
// golden master used to check the rules end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/mamadbah2/gildedrose/internal/inventory"
	"github.com/mamadbah2/gildedrose/internal/service/reporting"
	"github.com/mamadbah2/gildedrose/pkg/logger"
)

const defaultDays = 2

func main() {
	log := logger.Must(logger.New(os.Getenv("LOG_LEVEL")))
	defer func() { _ = log.Sync() }()

	days, err := parseDays(os.Args[1:])
	if err != nil {
		log.Fatal("invalid arguments", zap.Error(err))
	}

	run(os.Stdout, days)
}

// parseDays accepts either -days N or a bare positional N.
func parseDays(args []string) (int, error) {
	fs := flag.NewFlagSet("texttest", flag.ContinueOnError)
	days := fs.Int("days", defaultDays, "number of days to print")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	if fs.NArg() > 0 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return 0, fmt.Errorf("days must be an integer: %w", err)
		}
		return n, nil
	}
	return *days, nil
}

func run(w io.Writer, days int) {
	fmt.Fprintln(w, "OMGHAI!")

	items := inventory.FixtureItems()
	for day := 0; day < days; day++ {
		fmt.Fprint(w, reporting.FormatDay(day, items))
		inventory.UpdateQuality(items)
	}
}
