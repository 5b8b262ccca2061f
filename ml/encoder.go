package ml

import "sort"

// OneHotEncoder maps categorical values onto indicator features.
// Categories unseen at fit time encode as all zeros, so serving never
// fails on an unknown category.
type OneHotEncoder struct {
	// Categories holds one sorted vocabulary per categorical column.
	Categories [][]string
}

// fitEncoder collects the vocabulary of each categorical column.
// Empty strings mark absent values and are not part of the vocabulary.
func fitEncoder(cols [][]string) *OneHotEncoder {
	enc := &OneHotEncoder{Categories: make([][]string, len(cols))}
	for j, col := range cols {
		seen := make(map[string]bool)
		for _, v := range col {
			if v != "" {
				seen[v] = true
			}
		}
		vocab := make([]string, 0, len(seen))
		for v := range seen {
			vocab = append(vocab, v)
		}
		sort.Strings(vocab)
		enc.Categories[j] = vocab
	}
	return enc
}

// Width returns the number of indicator features the encoder emits.
func (e *OneHotEncoder) Width() int {
	w := 0
	for _, vocab := range e.Categories {
		w += len(vocab)
	}
	return w
}

// Transform encodes one row of categorical values.
func (e *OneHotEncoder) Transform(row []string) []float64 {
	out := make([]float64, 0, e.Width())
	for j, vocab := range e.Categories {
		ind := make([]float64, len(vocab))
		if j < len(row) {
			for k, cat := range vocab {
				if row[j] == cat {
					ind[k] = 1
					break
				}
			}
		}
		out = append(out, ind...)
	}
	return out
}
