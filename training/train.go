package training

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"price-optimization-api/ml"
	"price-optimization-api/models"
)

const ratioEpsilon = 1e-6

// numCols is the numeric column layout the pipeline is fitted on. The
// serving feature builder reproduces exactly this order from the
// metadata descriptor.
var numCols = []string{
	"unit_price", "comp_1", "comp_2", "comp_3", "freight_price",
	"price_ratio_comp1", "price_ratio_comp2", "price_ratio_comp3",
}

// Options controls one training run.
type Options struct {
	CSVPath      string
	ModelPath    string
	MetadataPath string
}

// Run fits the pricing pipeline from historical CSV data and writes the
// model artifact plus the metadata descriptor.
func Run(opts Options) error {
	f, err := os.Open(opts.CSVPath)
	if err != nil {
		return fmt.Errorf("open training data: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("read training data: %w", err)
	}
	if len(records) < 2 {
		return fmt.Errorf("training data %s has no data rows", opts.CSVPath)
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIdx[name] = i
	}
	for _, required := range []string{"unit_price", "comp_1", "comp_2", "comp_3", "freight_price", "qty"} {
		if _, ok := colIdx[required]; !ok {
			return fmt.Errorf("training data missing required column %q", required)
		}
	}

	catIdx, hasCategory := colIdx["product_category_name"]
	var catCols []string
	if hasCategory {
		catCols = []string{"product_category_name"}
	}

	var (
		nums    [][]float64
		cats    [][]string
		y       []float64
		skipped int
	)
	for _, rec := range records[1:] {
		row, qty, err := parseRow(rec, colIdx)
		if err != nil {
			skipped++
			continue
		}
		nums = append(nums, row)
		y = append(y, math.Log1p(qty))
		if hasCategory {
			cats = append(cats, []string{rec[catIdx]})
		} else {
			cats = append(cats, nil)
		}
	}
	if len(nums) == 0 {
		return fmt.Errorf("training data %s has no parseable rows", opts.CSVPath)
	}
	if skipped > 0 {
		log.Printf("skipped %d unparseable rows", skipped)
	}

	log.Printf("Fitting model on %d rows...", len(nums))
	pipe, err := ml.Fit(ml.DefaultTrainConfig(), numCols, catCols, nums, cats, y)
	if err != nil {
		return fmt.Errorf("fit pipeline: %w", err)
	}

	if err := pipe.Save(opts.ModelPath); err != nil {
		return err
	}

	meta := models.Metadata{
		TrainedAt:       time.Now().UTC().Format(time.RFC3339),
		ModelPath:       opts.ModelPath,
		MetadataVersion: 1,
		NumCols:         numCols,
		CatCols:         catCols,
		Target:          "log1p(qty)",
	}
	if err := writeMetadata(opts.MetadataPath, meta); err != nil {
		return err
	}

	log.Printf("Model saved to %s", opts.ModelPath)
	log.Printf("Metadata saved to %s", opts.MetadataPath)
	return nil
}

// parseRow extracts the base numeric fields from one CSV record and
// derives the competitor ratio columns, in numCols order.
func parseRow(rec []string, colIdx map[string]int) ([]float64, float64, error) {
	get := func(name string) (float64, error) {
		i := colIdx[name]
		if i >= len(rec) {
			return 0, fmt.Errorf("row too short for column %q", name)
		}
		return strconv.ParseFloat(rec[i], 64)
	}

	unitPrice, err := get("unit_price")
	if err != nil {
		return nil, 0, err
	}
	comp1, err := get("comp_1")
	if err != nil {
		return nil, 0, err
	}
	comp2, err := get("comp_2")
	if err != nil {
		return nil, 0, err
	}
	comp3, err := get("comp_3")
	if err != nil {
		return nil, 0, err
	}
	freight, err := get("freight_price")
	if err != nil {
		return nil, 0, err
	}
	qty, err := get("qty")
	if err != nil {
		return nil, 0, err
	}

	row := []float64{
		unitPrice, comp1, comp2, comp3, freight,
		unitPrice / (comp1 + ratioEpsilon),
		unitPrice / (comp2 + ratioEpsilon),
		unitPrice / (comp3 + ratioEpsilon),
	}
	return row, qty, nil
}

func writeMetadata(path string, meta models.Metadata) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}
