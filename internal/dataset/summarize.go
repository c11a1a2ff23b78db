package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// aggregators maps aggregation names to functions over a group's cells.
// Numeric aggregations skip cells that do not parse as numbers; count
// counts non-missing cells.
var aggregators = map[string]func(values []string) string{
	"mean":   aggMean,
	"sum":    aggSum,
	"count":  aggCount,
	"min":    aggMin,
	"max":    aggMax,
	"median": aggMedian,
}

// AggFuncs lists the supported aggregation function names.
func AggFuncs() []string {
	names := make([]string, 0, len(aggregators))
	for name := range aggregators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summarize groups rows by one column and aggregates another, producing
// one output row per distinct group value, ordered by group key.
func (d *Dataset) Summarize(groupBy, aggCol, aggFunc string) (*Dataset, error) {
	agg, ok := aggregators[aggFunc]
	if !ok {
		return nil, fmt.Errorf("unsupported aggregation function %q — supported: %v", aggFunc, AggFuncs())
	}

	groupIdx, err := d.ColumnIndex(groupBy)
	if err != nil {
		return nil, err
	}
	aggIdx, err := d.ColumnIndex(aggCol)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	var keys []string
	for _, row := range d.Rows {
		key := row[groupIdx]
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], row[aggIdx])
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return compareValues(keys[i], keys[j]) < 0
	})

	out := &Dataset{Columns: []string{groupBy, aggCol}}
	for _, key := range keys {
		out.Rows = append(out.Rows, []string{key, agg(groups[key])})
	}
	return out, nil
}

func numericValues(values []string) []float64 {
	var nums []float64
	for _, v := range values {
		if f, ok := parseNumber(v); ok {
			nums = append(nums, f)
		}
	}
	return nums
}

func aggSum(values []string) string {
	nums := numericValues(values)
	if len(nums) == 0 {
		return ""
	}
	total := 0.0
	for _, f := range nums {
		total += f
	}
	return formatNumber(total)
}

func aggMean(values []string) string {
	nums := numericValues(values)
	if len(nums) == 0 {
		return ""
	}
	total := 0.0
	for _, f := range nums {
		total += f
	}
	return formatNumber(total / float64(len(nums)))
}

func aggCount(values []string) string {
	count := 0
	for _, v := range values {
		if !isMissing(v) {
			count++
		}
	}
	return strconv.Itoa(count)
}

func aggMin(values []string) string {
	nums := numericValues(values)
	if len(nums) == 0 {
		return ""
	}
	min := nums[0]
	for _, f := range nums[1:] {
		if f < min {
			min = f
		}
	}
	return formatNumber(min)
}

func aggMax(values []string) string {
	nums := numericValues(values)
	if len(nums) == 0 {
		return ""
	}
	max := nums[0]
	for _, f := range nums[1:] {
		if f > max {
			max = f
		}
	}
	return formatNumber(max)
}

func aggMedian(values []string) string {
	nums := numericValues(values)
	if len(nums) == 0 {
		return ""
	}
	sort.Float64s(nums)
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return formatNumber(nums[mid])
	}
	return formatNumber((nums[mid-1] + nums[mid]) / 2)
}
