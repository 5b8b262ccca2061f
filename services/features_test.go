package services

import (
	"math"
	"testing"

	"price-optimization-api/models"
)

func TestBuildFeatureRowFallbackOrder(t *testing.T) {
	req := baseRequest()
	row := BuildFeatureRow(req, *req.UnitPrice, nil)

	if len(row.Nums) != len(defaultNumOrder) {
		t.Fatalf("len(Nums) = %d, want %d", len(row.Nums), len(defaultNumOrder))
	}
	want := []float64{
		100, 90, 95, 105, 10,
		100 / (90 + ratioEpsilon),
		100 / (95 + ratioEpsilon),
		100 / (105 + ratioEpsilon),
	}
	for i := range want {
		if math.Abs(row.Nums[i]-want[i]) > 1e-12 {
			t.Errorf("Nums[%d] (%s) = %v, want %v", i, defaultNumOrder[i], row.Nums[i], want[i])
		}
	}
	if len(row.Cats) != 1 || row.Cats[0] != "garden_tools" {
		t.Errorf("Cats = %v, want [garden_tools]", row.Cats)
	}
}

func TestBuildFeatureRowZeroCompetitor(t *testing.T) {
	req := baseRequest()
	req.Comp1 = fptr(0)

	row := BuildFeatureRow(req, 100, nil)

	// 100 / (0 + 1e-6) = 1e8; the epsilon keeps the ratio finite.
	wantRatio := 1e8
	got := row.Nums[5]
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("ratio for zero competitor = %v, want finite", got)
	}
	if math.Abs(got-wantRatio)/wantRatio > 1e-9 {
		t.Errorf("ratio = %v, want %v", got, wantRatio)
	}
}

func TestBuildFeatureRowMetadataOrder(t *testing.T) {
	meta := &models.Metadata{
		NumCols: []string{"freight_price", "unit_price", "comp_2"},
		CatCols: []string{"product_category_name"},
	}
	req := baseRequest()

	row := BuildFeatureRow(req, *req.UnitPrice, meta)

	want := []float64{10, 100, 95}
	if len(row.Nums) != len(want) {
		t.Fatalf("len(Nums) = %d, want %d", len(row.Nums), len(want))
	}
	for i := range want {
		if row.Nums[i] != want[i] {
			t.Errorf("Nums[%d] = %v, want %v", i, row.Nums[i], want[i])
		}
	}
}

func TestBuildFeatureRowUnknownColumnsDefault(t *testing.T) {
	meta := &models.Metadata{
		NumCols: []string{"unit_price", "seasonality_index"},
		CatCols: []string{"product_category_name", "warehouse_region"},
	}
	req := baseRequest()

	row := BuildFeatureRow(req, *req.UnitPrice, meta)

	if row.Nums[1] != 0 {
		t.Errorf("undeclared numeric column = %v, want 0", row.Nums[1])
	}
	if row.Cats[0] != "garden_tools" {
		t.Errorf("Cats[0] = %q, want garden_tools", row.Cats[0])
	}
	if row.Cats[1] != "" {
		t.Errorf("undeclared categorical column = %q, want empty", row.Cats[1])
	}
}

func TestBuildFeatureRowCandidatePrice(t *testing.T) {
	req := baseRequest()

	row := BuildFeatureRow(req, 200, nil)

	if row.Nums[0] != 200 {
		t.Errorf("unit_price = %v, want the candidate 200", row.Nums[0])
	}
	wantRatio := 200 / (90 + ratioEpsilon)
	if math.Abs(row.Nums[5]-wantRatio) > 1e-12 {
		t.Errorf("comp_1 ratio = %v, want %v (built from candidate, not request price)", row.Nums[5], wantRatio)
	}
}
