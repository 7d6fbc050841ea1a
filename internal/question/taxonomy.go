package question

import "slices"

// Taxonomy returns AllCategory followed by the distinct categories of
// records in ascending order.
func Taxonomy(records []Record) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, r := range records {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		categories = append(categories, r.Category)
	}
	slices.Sort(categories)
	return append([]string{AllCategory}, categories...)
}

// CountByCategory returns the number of records per category. The
// AllCategory key holds the total.
func CountByCategory(records []Record) map[string]int {
	counts := map[string]int{AllCategory: len(records)}
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}
