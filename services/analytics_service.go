package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BassamElsayed2/e-commerceCp/models"
)

// Number of trailing calendar months in the dashboard sales series.
const monthlyWindow = 6

// Maximum entries in the top-products ranking.
const topProductsLimit = 5

// Display-name fallback when an order item has no resolvable product name.
const unknownProductName = "منتج غير معروف"

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// DashboardInputs are the four collaborator reads the summary is derived
// from. Orders is a bounded page (at most 1000 rows), not the full table.
type DashboardInputs struct {
	OrderStats   models.OrderStat
	Orders       []models.AnalyticsOrder
	ProductStats models.ProductStat
	UserStats    models.UserStat
}

// BuildDashboardSummary derives the dashboard summary from the four reads
// plus wall-clock now. It is a pure in-memory transform: no collaborator
// calls, recomputed in full on every invocation.
func BuildDashboardSummary(now time.Time, in DashboardInputs) models.AnalyticsSummary {
	totalRevenue := 0.0
	for _, order := range in.Orders {
		totalRevenue += order.TotalPrice
	}

	avgOrderValue := 0.0
	if len(in.Orders) > 0 {
		avgOrderValue = totalRevenue / float64(len(in.Orders))
	}

	// Orders-per-customer proxy, not a literal visit-to-purchase rate.
	conversionRate := 0.0
	if in.UserStats.Total > 0 {
		conversionRate = float64(len(in.Orders)) / float64(in.UserStats.Total) * 100
	}

	return models.AnalyticsSummary{
		TotalRevenue:      totalRevenue,
		TotalOrders:       in.OrderStats.Total,
		TotalCustomers:    in.UserStats.Total,
		TotalProducts:     in.ProductStats.Total,
		AverageOrderValue: avgOrderValue,
		ConversionRate:    conversionRate,
		MonthlySales:      buildMonthlySales(now, in.Orders),
		TopProducts:       buildTopProducts(in.Orders),
	}
}

// buildMonthlySales buckets the fetched orders into the trailing six
// calendar months ending at the current month. Matching is a textual
// YYYY-MM prefix check against the stored creation timestamp, so rows with
// malformed timestamps simply fall out of every bucket.
func buildMonthlySales(now time.Time, orders []models.AnalyticsOrder) []models.MonthlySales {
	series := make([]models.MonthlySales, 0, monthlyWindow)

	// Newest-first, reversed below so the series reads oldest to newest.
	for i := 0; i < monthlyWindow; i++ {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := month.Format("2006-01")

		revenue := 0.0
		count := 0
		for _, order := range orders {
			if strings.HasPrefix(order.CreatedAt, key) {
				revenue += order.TotalPrice
				count++
			}
		}

		series = append(series, models.MonthlySales{
			Month:   monthLabel(month),
			Revenue: revenue,
			Orders:  count,
		})
	}

	for left, right := 0, len(series)-1; left < right; left, right = left+1, right-1 {
		series[left], series[right] = series[right], series[left]
	}
	return series
}

func monthLabel(month time.Time) string {
	return arabicMonths[month.Month()-1] + " " + strconv.Itoa(month.Year())
}

// buildTopProducts groups order items by resolved display name and keeps the
// five largest by accumulated sales amount. Ties keep first-seen order, so
// the ranking is deterministic for a given input order.
func buildTopProducts(orders []models.AnalyticsOrder) []models.TopProductEntry {
	totals := make(map[string]*models.TopProductEntry)
	names := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			name := item.ProductNameAr
			if name == "" {
				name = item.ProductNameEn
			}
			if name == "" {
				name = unknownProductName
			}

			entry, ok := totals[name]
			if !ok {
				entry = &models.TopProductEntry{Name: name}
				totals[name] = entry
				names = append(names, name)
			}
			entry.Sales += item.Price * float64(item.Quantity)
			entry.Quantity += item.Quantity
		}
	}

	ranked := make([]models.TopProductEntry, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, *totals[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sales > ranked[j].Sales
	})

	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	return ranked
}
