package stack

// Band is one stacked series: Topline[i] - Baseline[i] is the series value at
// record i. Every band owns its slices.
type Band struct {
	Key      string    `yaml:"key" json:"key"`
	Baseline []float64 `yaml:"baseline" json:"baseline"`
	Topline  []float64 `yaml:"topline" json:"topline"`
}

// Data stacks keys over rows in key order. Band 0 sits on zero and every
// following band sits on the previous topline. Missing or non-numeric values
// count as 0, so the result always has len(keys) bands of len(rows) entries.
func Data(rows []map[string]any, keys []string, opts ...Option) []Band {
	opt := optionNew(opts...)

	bands := make([]Band, len(keys))
	prev := make([]float64, len(rows))

	for k, key := range keys {
		base := make([]float64, len(rows))
		copy(base, prev)

		top := make([]float64, len(rows))

		for i, row := range rows {
			top[i] = prev[i] + opt.value(row, key)
		}

		bands[k] = Band{
			Key:      key,
			Baseline: base,
			Topline:  top,
		}

		prev = top
	}

	return bands
}

// Totals returns the per-row sum over keys, the height of a stacked bar.
func Totals(rows []map[string]any, keys []string, opts ...Option) []float64 {
	opt := optionNew(opts...)

	totals := make([]float64, len(rows))

	for i, row := range rows {
		for _, key := range keys {
			totals[i] += opt.value(row, key)
		}
	}

	return totals
}

// MaxTotal returns the tallest stacked row. ok is false when there are no rows.
func MaxTotal(rows []map[string]any, keys []string, opts ...Option) (max float64, ok bool) {
	for i, total := range Totals(rows, keys, opts...) {
		if i == 0 || total > max {
			max = total
		}

		ok = true
	}

	return
}

// MaxTopline returns the highest topline value across bands, or 0.
func MaxTopline(bands []Band) (max float64) {
	for _, band := range bands {
		for _, v := range band.Topline {
			if v > max {
				max = v
			}
		}
	}

	return
}
