package entity

import (
	"cmp"
	"slices"
)

// Stats is the aggregate view of all orders.
type Stats struct {
	TotalOrders    int            `json:"total_orders"`
	TotalEvidences int            `json:"total_evidences"`
	ByStatus       map[string]int `json:"by_status"`
	ByTechnician   map[string]int `json:"by_technician"`
}

// Count is one row of a breakdown table.
type Count struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// StatusBreakdown returns by_status sorted by descending count, then key.
func (s *Stats) StatusBreakdown() []Count {
	return sortedCounts(s.ByStatus)
}

// TechnicianBreakdown returns by_technician sorted by descending count, then key.
func (s *Stats) TechnicianBreakdown() []Count {
	return sortedCounts(s.ByTechnician)
}

// StatusTotal sums by_status; it matches TotalOrders for a consistent server answer.
func (s *Stats) StatusTotal() int {
	return sum(s.ByStatus)
}

// TechnicianTotal sums by_technician.
func (s *Stats) TechnicianTotal() int {
	return sum(s.ByTechnician)
}

func sortedCounts(m map[string]int) []Count {
	rows := make([]Count, 0, len(m))
	for k, v := range m {
		rows = append(rows, Count{Key: k, Value: v})
	}
	slices.SortFunc(rows, func(a, b Count) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}

		return cmp.Compare(a.Key, b.Key)
	})

	return rows
}

func sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}

	return total
}
