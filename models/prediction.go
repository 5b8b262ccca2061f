package models

import "time"

// PredictRequest is the request body shared by /predict and /optimize.
// Numeric fields are pointers so a literal 0 still satisfies the required
// binding: a competitor price of exactly zero is valid input.
type PredictRequest struct {
	UnitPrice           *float64 `json:"unit_price" binding:"required"`
	Comp1               *float64 `json:"comp_1" binding:"required"`
	Comp2               *float64 `json:"comp_2" binding:"required"`
	Comp3               *float64 `json:"comp_3" binding:"required"`
	FreightPrice        *float64 `json:"freight_price" binding:"required"`
	ProductCategoryName string   `json:"product_category_name,omitempty"`
}

// PredictionResult is the outcome of scoring one price point.
// Both values are floored at zero.
type PredictionResult struct {
	PredictedQty    float64 `json:"predicted_qty"`
	PredictedProfit float64 `json:"predicted_profit"`
}

// OptimizationResult is the grid point with maximum predicted profit.
type OptimizationResult struct {
	BestPrice  float64 `json:"best_price"`
	BestProfit float64 `json:"best_profit"`
	BestQty    float64 `json:"best_qty"`
}

// PredictionRecord is one persisted history row, written after a request
// has been served. Kind is "predict" or "optimize".
type PredictionRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TS              time.Time `gorm:"column:ts;index" json:"ts"`
	Kind            string    `gorm:"column:kind;index" json:"kind"`
	UnitPrice       float64   `gorm:"column:unit_price" json:"unit_price"`
	FreightPrice    float64   `gorm:"column:freight_price" json:"freight_price"`
	PredictedQty    float64   `gorm:"column:predicted_qty" json:"predicted_qty"`
	PredictedProfit float64   `gorm:"column:predicted_profit" json:"predicted_profit"`
}

func (PredictionRecord) TableName() string { return "prediction_records" }
