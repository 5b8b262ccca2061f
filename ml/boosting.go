package ml

import "gonum.org/v1/gonum/stat"

// GradientBoosting is a least-squares gradient boosted tree ensemble.
// Each round fits a tree to the current residuals and adds its scaled
// predictions to the running estimate.
type GradientBoosting struct {
	InitValue    float64
	LearningRate float64
	Trees        []Tree
}

// TrainConfig holds the boosting hyperparameters.
type TrainConfig struct {
	NEstimators    int
	LearningRate   float64
	MaxDepth       int
	MinSamplesLeaf int
}

// DefaultTrainConfig matches the production trainer: 150 trees of depth
// 5 at learning rate 0.1.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		NEstimators:    150,
		LearningRate:   0.1,
		MaxDepth:       5,
		MinSamplesLeaf: 2,
	}
}

func fitBoosting(cfg TrainConfig, X [][]float64, y []float64) *GradientBoosting {
	gb := &GradientBoosting{
		InitValue:    stat.Mean(y, nil),
		LearningRate: cfg.LearningRate,
	}

	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}

	pred := make([]float64, len(y))
	for i := range pred {
		pred[i] = gb.InitValue
	}

	resid := make([]float64, len(y))
	for m := 0; m < cfg.NEstimators; m++ {
		for i := range y {
			resid[i] = y[i] - pred[i]
		}
		tree := fitTree(X, resid, idx, cfg.MaxDepth, cfg.MinSamplesLeaf)
		for i := range pred {
			pred[i] += cfg.LearningRate * tree.predict(X[i])
		}
		gb.Trees = append(gb.Trees, *tree)
	}
	return gb
}

func (g *GradientBoosting) predict(x []float64) float64 {
	out := g.InitValue
	for i := range g.Trees {
		out += g.LearningRate * g.Trees[i].predict(x)
	}
	return out
}
