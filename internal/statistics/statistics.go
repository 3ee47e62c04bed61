package statistics

import (
	"fmt"
	"slices"
	"strings"
)

// Counters tallies occurrences of labels, such as hand categories or game
// outcomes, across simulation iterations.
type Counters struct {
	counts map[string]int
	total  int
}

// Share is one row of a percentage report
type Share struct {
	Label   string
	Count   int
	Percent float64
}

// NewCounters returns an empty tally
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]int)}
}

// Increment adds one occurrence of label
func (c *Counters) Increment(label string) {
	c.counts[label]++
	c.total++
}

// Count returns the occurrences recorded for label
func (c *Counters) Count(label string) int {
	return c.counts[label]
}

// Total returns the number of occurrences across all labels
func (c *Counters) Total() int {
	return c.total
}

// Labels returns every label seen, sorted
func (c *Counters) Labels() []string {
	labels := make([]string, 0, len(c.counts))
	for label := range c.counts {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// Percentages returns each label's share of the total, sorted by label.
func (c *Counters) Percentages() []Share {
	shares := make([]Share, 0, len(c.counts))
	for _, label := range c.Labels() {
		count := c.counts[label]
		shares = append(shares, Share{
			Label:   label,
			Count:   count,
			Percent: float64(count) / float64(c.total) * 100,
		})
	}
	return shares
}

// Format renders the percentage report one line per label, the label padded
// to 20 columns and the percentage with one decimal.
func (c *Counters) Format() string {
	var b strings.Builder
	for _, share := range c.Percentages() {
		fmt.Fprintf(&b, "  %-20s %.1f%%\n", share.Label, share.Percent)
	}
	return b.String()
}

// Validate checks that exactly n occurrences were recorded.
func (c *Counters) Validate(n int) error {
	if c.total != n {
		return fmt.Errorf("recorded %d occurrences, expected %d", c.total, n)
	}
	sum := 0
	for _, count := range c.counts {
		sum += count
	}
	if sum != c.total {
		return fmt.Errorf("label counts sum to %d but total is %d", sum, c.total)
	}
	return nil
}
