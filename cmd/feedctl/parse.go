package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/feed"
	"github.com/MichalMitros/supplier-feed-sync/internal/mapper"
	"github.com/MichalMitros/supplier-feed-sync/internal/markup"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	dialect        string
	supplier       string
	categoriesFile string
	rulesFile      string
	conversionRate float64
	output         string
}

// parsedRecord is a record printed by parse command. Mapping and price are set only when requested.
type parsedRecord struct {
	models.FeedRecord
	Category   *string          `json:"category,omitempty"`
	CategoryID *string          `json:"categoryId,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

func newParseCmd(logger func() *zerolog.Logger) *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a local feed file",
		Long: `Parse a local XML feed file with the parser of provided dialect and print its records.
With --categories records are mapped onto the category tree stored in the JSON file
(flat list of categories). With --rules records are priced with markup rules from the JSON file.`,
		Example: `  feedctl parse ./acme.xml --dialect standard
  feedctl parse ./acme.xml --dialect google --categories tree.json --rules rules.json --output table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts, logger())
		},
	}

	cmd.Flags().StringVar(&opts.dialect, "dialect", "", "feed dialect (required), see feedctl dialects")
	cmd.Flags().StringVar(&opts.supplier, "supplier", "", "supplier name used in errors (default is file name)")
	cmd.Flags().StringVar(&opts.categoriesFile, "categories", "", "JSON file with store categories")
	cmd.Flags().StringVar(&opts.rulesFile, "rules", "", "JSON file with markup rules")
	cmd.Flags().Float64Var(&opts.conversionRate, "rate", 1, "price conversion rate")
	cmd.Flags().StringVar(&opts.output, "output", "json", "output format: json or table")
	_ = cmd.MarkFlagRequired("dialect")

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts parseOptions, logger *zerolog.Logger) error {
	dialect, err := feed.ParseDialect(opts.dialect)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(feed.Dialects(), ", "))
	}
	parser, err := feed.ForDialect(dialect)
	if err != nil {
		return err
	}

	supplier := opts.supplier
	if supplier == "" {
		supplier = filepath.Base(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("can't open feed file: %w", err)
	}
	defer file.Close()

	records, err := parser.Parse(cmd.Context(), supplier, file)
	if err != nil {
		return err
	}
	logger.Info().Str("file", path).Str("dialect", string(dialect)).Int("records", len(records)).Msg("feed parsed")

	parsed := lo.Map(records, func(record models.FeedRecord, _ int) parsedRecord {
		return parsedRecord{FeedRecord: record}
	})

	if opts.categoriesFile != "" {
		var categories []models.StoreCategory
		if err := readJSON(opts.categoriesFile, &categories); err != nil {
			return err
		}
		snapshot, err := categorytree.NewSnapshot(categories)
		if err != nil {
			return fmt.Errorf("can't build category tree: %w", err)
		}
		for i, mapped := range mapper.MapBatch(records, snapshot) {
			parsed[i].Category = lo.ToPtr(mapped.Category)
			parsed[i].CategoryID = mapped.CategoryID
		}
		logger.Debug().Int("categories", len(categories)).Msg("records mapped")
	}

	if opts.rulesFile != "" {
		var rules []models.MarkupRule
		if err := readJSON(opts.rulesFile, &rules); err != nil {
			return err
		}
		priced := &models.Supplier{Name: supplier, MarkupRules: rules, ConversionRate: opts.conversionRate}
		for i := range parsed {
			parsed[i].Price = lo.ToPtr(markup.Price(parsed[i].FeedRecord, priced))
		}
		logger.Debug().Int("rules", len(rules)).Msg("records priced")
	}

	switch strings.ToLower(opts.output) {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(parsed)
	case "table":
		return writeTable(cmd.OutOrStdout(), parsed)
	default:
		return fmt.Errorf("invalid output format: %s (use 'json' or 'table')", opts.output)
	}
}

func writeTable(out io.Writer, records []parsedRecord) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "ID\tName\tRaw category\tCategory\tStock\tPrice\n")
	for _, r := range records {
		price := r.WebOfferPrice
		if r.Price != nil {
			price = r.Price.StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", r.ID, r.Name, r.RawCategory, lo.FromPtr(r.Category), r.Stock, price)
	}
	return w.Flush()
}

func readJSON(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("can't decode %s: %w", path, err)
	}
	return nil
}
