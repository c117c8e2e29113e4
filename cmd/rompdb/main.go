package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"rompdb/internal"
	"rompdb/internal/cache"
	"rompdb/internal/config"
	"rompdb/internal/database"
	"rompdb/internal/pipeline"
	"rompdb/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	store := cache.New(cfg.DataDir)

	cmd := os.Args[1]
	switch cmd {
	case "build":
		_, stats, _, err := store.Get()
		must(err)
		fmt.Printf("build done files=%d rows=%d\n", stats.Files, stats.Rows)
		for source, dropped := range stats.Dropped {
			fmt.Printf("  %d rows dropped from %s\n", dropped, source)
		}
	case "lookup":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		sapArg := fs.String("sap", "", "SAP number")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)
		sap, err := parseSAPArg(*sapArg)
		must(err)

		table, _, _, err := store.Get()
		must(err)
		matches := table.FilterByRompAndSAP(romp, sap)
		if len(matches) == 0 {
			fmt.Printf("no matches for ROMP %s + SAP %d\n", romp, sap)
			return
		}
		for _, record := range matches {
			renderCard(record)
		}
		renderTable(matches)
	case "carriers":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)

		table, _, _, err := store.Get()
		must(err)
		carriers := table.DistinctCarriers(romp)
		if len(carriers) == 0 {
			fmt.Printf("no carriers recorded for ROMP %s\n", romp)
			return
		}
		for _, carrier := range carriers {
			fmt.Println(carrier)
		}
	case "carrier":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		name := fs.String("name", "", "carrier name")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)
		if strings.TrimSpace(*name) == "" {
			must(fmt.Errorf("--name is required"))
		}

		table, _, _, err := store.Get()
		must(err)
		matches := table.FilterByRompAndCarrier(romp, *name)
		if len(matches) == 0 {
			fmt.Printf("no matches for ROMP %s + carrier %s\n", romp, strings.TrimSpace(*name))
			return
		}
		renderTable(database.SortForListing(matches))
	case "date":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		on := fs.String("on", "", "ship date, e.g. 2024-01-10")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)
		day, ok := util.ParseShipDate(*on)
		if !ok {
			must(fmt.Errorf("unrecognized date: %q", *on))
		}

		table, _, _, err := store.Get()
		must(err)
		matches := table.FilterByRompAndDate(romp, day)
		if len(matches) == 0 {
			fmt.Printf("no shipments for ROMP %s on %s\n", romp, day.Format("2006-01-02"))
			return
		}
		renderTable(database.SortForListing(matches))
	case "range":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)

		table, _, _, err := store.Get()
		must(err)
		min, max, ok := table.DateRange(romp)
		if !ok {
			fmt.Printf("no dated shipments for ROMP %s\n", romp)
			return
		}
		fmt.Printf("ROMP %s shipped between %s and %s\n", romp, min.Format("2006-01-02"), max.Format("2006-01-02"))
	case "list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)

		table, _, _, err := store.Get()
		must(err)
		matches := table.FilterByRomp(romp)
		if len(matches) == 0 {
			fmt.Printf("no shipments for ROMP %s\n", romp)
			return
		}
		renderTable(database.SortForListing(matches))
	case "export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		rompArg := fs.String("romp", "", "ROMP code (01-12)")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		romp, err := parseRompArg(*rompArg)
		must(err)

		table, _, _, err := store.Get()
		must(err)
		matches := database.SortForListing(table.FilterByRomp(romp))
		if len(matches) == 0 {
			must(fmt.Errorf("no shipments for ROMP %s", romp))
		}
		outputPath := *out
		if strings.TrimSpace(outputPath) == "" {
			outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("romp_%s.xlsx", romp))
		}
		must(pipeline.ExportRecordsToXLSX(matches, outputPath))
		fmt.Printf("exported %d rows to %s\n", len(matches), outputPath)
	case "watch":
		s := cache.NewService(store, cfg)
		must(s.Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

func parseRompArg(input string) (string, error) {
	romp, ok := util.NormalizeRomp(input)
	if !ok {
		return "", fmt.Errorf("--romp must be a ROMP code (01-12)")
	}
	for _, option := range internal.RompOptions {
		if romp == option {
			return romp, nil
		}
	}
	return "", fmt.Errorf("unknown ROMP: %s", romp)
}

func parseSAPArg(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("--sap is required")
	}
	sap, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("SAP must be a number")
	}
	return sap, nil
}

func renderCard(record internal.ShipmentRecord) {
	fmt.Printf("ROMP %s • SAP %d\n", record.Romp, record.SAP)
	fmt.Printf("  Catalog:     %s\n", record.Catalog)
	fmt.Printf("  Shipped Qty: %s\n", record.ShippedQty)
	fmt.Printf("  Ship Date:   %s\n", record.ShipDate.Format("2006-01-02"))
	fmt.Printf("  Carrier:     %s\n\n", record.Carrier)
}

func renderTable(records []internal.ShipmentRecord) {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader(pipeline.RequiredColumns)
	for _, record := range records {
		w.Append([]string{
			strconv.Itoa(record.SAP),
			record.Romp,
			record.Catalog,
			record.ShippedQty,
			record.ShipDate.Format("2006-01-02"),
			record.Carrier,
		})
	}
	w.Render()
}

func usage() {
	fmt.Println("usage: rompdb <command>")
	fmt.Println("commands:")
	fmt.Println("  build")
	fmt.Println("  lookup --romp=01 --sap=10")
	fmt.Println("  carriers --romp=01")
	fmt.Println("  carrier --romp=01 --name=FedEx")
	fmt.Println("  date --romp=01 --on=2024-01-10")
	fmt.Println("  range --romp=01")
	fmt.Println("  list --romp=01")
	fmt.Println("  export --romp=01 [--out=./out/romp_01.xlsx]")
	fmt.Println("  watch")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
