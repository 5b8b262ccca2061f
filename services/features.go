package services

import "price-optimization-api/models"

// ratioEpsilon guards the competitor-price division; a competitor price
// of exactly 0 yields a large finite ratio instead of +Inf.
const ratioEpsilon = 1e-6

// defaultNumOrder is the column layout used when no metadata descriptor
// is available. It matches the trainer's declared numeric columns; an
// artifact trained with a different layout will mispredict silently in
// this fallback.
var defaultNumOrder = []string{
	"unit_price", "comp_1", "comp_2", "comp_3", "freight_price",
	"price_ratio_comp1", "price_ratio_comp2", "price_ratio_comp3",
}

// BuildFeatureRow assembles one feature row for the given candidate
// price. The three competitor ratios are always recomputed against
// price, never against the request's original unit_price. When metadata
// is present its column order is authoritative: numeric columns it
// declares but the request lacks default to 0, categorical ones to "".
func BuildFeatureRow(req models.PredictRequest, price float64, meta *models.Metadata) models.FeatureRow {
	fields := map[string]float64{
		"unit_price":        price,
		"comp_1":            *req.Comp1,
		"comp_2":            *req.Comp2,
		"comp_3":            *req.Comp3,
		"freight_price":     *req.FreightPrice,
		"price_ratio_comp1": price / (*req.Comp1 + ratioEpsilon),
		"price_ratio_comp2": price / (*req.Comp2 + ratioEpsilon),
		"price_ratio_comp3": price / (*req.Comp3 + ratioEpsilon),
	}

	numOrder := defaultNumOrder
	catOrder := []string{"product_category_name"}
	if meta != nil && len(meta.NumCols) > 0 {
		numOrder = meta.NumCols
		catOrder = meta.CatCols
	}

	row := models.FeatureRow{
		Nums: make([]float64, 0, len(numOrder)),
		Cats: make([]string, 0, len(catOrder)),
	}
	for _, col := range numOrder {
		row.Nums = append(row.Nums, fields[col])
	}
	for _, col := range catOrder {
		if col == "product_category_name" {
			row.Cats = append(row.Cats, req.ProductCategoryName)
		} else {
			row.Cats = append(row.Cats, "")
		}
	}
	return row
}
