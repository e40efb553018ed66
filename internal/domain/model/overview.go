package model

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// OverviewTotals is one summary block of the overview screen.
type OverviewTotals struct {
	Amount         decimal.Decimal `json:"amount"`
	Quantity       int             `json:"quantity"`
	OnlineOrders   int             `json:"onlineOrders"`
	CanceledOrders int             `json:"canceledOrders"`
	OfflineOrders  int             `json:"offlineOrders"`
}

// TotalOrders is online minus cancelled plus offline, ignoring negative offline counts.
func (t OverviewTotals) TotalOrders() int {
	return t.OnlineOrders - t.CanceledOrders + max(t.OfflineOrders, 0)
}

// GroupTotals pairs a product group with its totals.
type GroupTotals struct {
	Group  string
	Totals OverviewTotals
}

// Overview is the sales summary, per product group and overall.
type Overview struct {
	Groups []GroupTotals
	Total  OverviewTotals
}

// UnmarshalJSON reads the backend shape {"ELITE": {...}, "HEAL": {...}, "total": {...}}.
func (o *Overview) UnmarshalJSON(b []byte) error {
	var raw map[string]OverviewTotals
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	o.Groups = o.Groups[:0]
	for k, v := range raw {
		if k == "total" {
			o.Total = v
			continue
		}
		o.Groups = append(o.Groups, GroupTotals{Group: k, Totals: v})
	}
	sort.Slice(o.Groups, func(i, j int) bool { return o.Groups[i].Group < o.Groups[j].Group })
	return nil
}
