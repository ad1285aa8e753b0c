package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BassamElsayed2/e-commerceCp/models"
)

func TestBuildDashboardSummary_KnownScenario(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)

	in := DashboardInputs{
		OrderStats:   models.OrderStat{Total: 1},
		ProductStats: models.ProductStat{Total: 10},
		UserStats:    models.UserStat{Total: 2},
		Orders: []models.AnalyticsOrder{
			{
				TotalPrice: 100,
				CreatedAt:  "2024-01-15T10:30:00+00:00",
				Items: []models.AnalyticsOrderItem{
					{Quantity: 2, Price: 50, ProductNameAr: "منتج أ"},
				},
			},
		},
	}

	summary := BuildDashboardSummary(now, in)

	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 10, summary.TotalProducts)
	assert.Equal(t, 100.0, summary.AverageOrderValue)
	assert.Equal(t, 50.0, summary.ConversionRate)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "منتج أ", summary.TopProducts[0].Name)
	assert.Equal(t, 100.0, summary.TopProducts[0].Sales)
	assert.Equal(t, 2, summary.TopProducts[0].Quantity)

	require.Len(t, summary.MonthlySales, 6)
	last := summary.MonthlySales[5]
	assert.Equal(t, "يناير 2024", last.Month)
	assert.Equal(t, 100.0, last.Revenue)
	assert.Equal(t, 1, last.Orders)
	for _, bucket := range summary.MonthlySales[:5] {
		assert.Zero(t, bucket.Revenue)
		assert.Zero(t, bucket.Orders)
	}
}

func TestBuildDashboardSummary_EmptyInputs(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	summary := BuildDashboardSummary(now, DashboardInputs{})

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AverageOrderValue)
	assert.Zero(t, summary.ConversionRate)
	assert.Empty(t, summary.TopProducts)
	require.Len(t, summary.MonthlySales, 6)
	for _, bucket := range summary.MonthlySales {
		assert.Zero(t, bucket.Revenue)
		assert.Zero(t, bucket.Orders)
	}
}

func TestBuildDashboardSummary_ConversionRateZeroUsers(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	in := DashboardInputs{
		Orders: []models.AnalyticsOrder{
			{TotalPrice: 40, CreatedAt: "2024-03-01T00:00:00+00:00"},
		},
	}

	summary := BuildDashboardSummary(now, in)

	assert.Equal(t, 0.0, summary.ConversionRate)
	assert.Equal(t, 40.0, summary.AverageOrderValue)
}

func TestBuildMonthlySales_SpansYearBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	orders := []models.AnalyticsOrder{
		{TotalPrice: 10, CreatedAt: "2023-09-20T08:00:00+00:00"},
		{TotalPrice: 20, CreatedAt: "2023-12-31T23:59:59+00:00"},
		{TotalPrice: 30, CreatedAt: "2024-02-01T00:00:00+00:00"},
		{TotalPrice: 40, CreatedAt: "2024-02-04T12:00:00+00:00"},
		// Outside the six-month window, must not appear anywhere.
		{TotalPrice: 99, CreatedAt: "2023-08-01T00:00:00+00:00"},
		// Malformed timestamp falls out of every bucket.
		{TotalPrice: 77, CreatedAt: "not-a-date"},
	}

	series := buildMonthlySales(now, orders)

	require.Len(t, series, 6)
	assert.Equal(t, "سبتمبر 2023", series[0].Month)
	assert.Equal(t, 10.0, series[0].Revenue)
	assert.Equal(t, 1, series[0].Orders)

	assert.Equal(t, "ديسمبر 2023", series[3].Month)
	assert.Equal(t, 20.0, series[3].Revenue)

	assert.Equal(t, "فبراير 2024", series[5].Month)
	assert.Equal(t, 70.0, series[5].Revenue)
	assert.Equal(t, 2, series[5].Orders)

	total := 0.0
	for _, bucket := range series {
		total += bucket.Revenue
	}
	assert.Equal(t, 100.0, total)
}

func TestBuildTopProducts_RankingAndNameFallback(t *testing.T) {
	orders := []models.AnalyticsOrder{
		{
			Items: []models.AnalyticsOrderItem{
				{Quantity: 1, Price: 10, ProductNameAr: "أ"},
				{Quantity: 2, Price: 30, ProductNameEn: "Widget"},
				{Quantity: 1, Price: 5},
			},
		},
		{
			Items: []models.AnalyticsOrderItem{
				{Quantity: 3, Price: 10, ProductNameAr: "أ"},
				{Quantity: 1, Price: 100, ProductNameAr: "ب"},
				{Quantity: 2, Price: 5},
			},
		},
	}

	ranked := buildTopProducts(orders)

	require.Len(t, ranked, 4)
	assert.Equal(t, "ب", ranked[0].Name)
	assert.Equal(t, 100.0, ranked[0].Sales)
	assert.Equal(t, "Widget", ranked[1].Name)
	assert.Equal(t, 60.0, ranked[1].Sales)
	assert.Equal(t, "أ", ranked[2].Name)
	assert.Equal(t, 40.0, ranked[2].Sales)
	assert.Equal(t, 4, ranked[2].Quantity)
	assert.Equal(t, "منتج غير معروف", ranked[3].Name)
	assert.Equal(t, 15.0, ranked[3].Sales)
	assert.Equal(t, 3, ranked[3].Quantity)
}

func TestBuildTopProducts_TruncatesToFive(t *testing.T) {
	items := make([]models.AnalyticsOrderItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, models.AnalyticsOrderItem{
			Quantity:      1,
			Price:         float64(10 * (i + 1)),
			ProductNameEn: string(rune('A' + i)),
		})
	}

	ranked := buildTopProducts([]models.AnalyticsOrder{{Items: items}})

	require.Len(t, ranked, 5)
	assert.Equal(t, "H", ranked[0].Name)
	assert.Equal(t, 80.0, ranked[0].Sales)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Sales, ranked[i].Sales)
	}
}

func TestBuildTopProducts_TiesKeepFirstSeenOrder(t *testing.T) {
	orders := []models.AnalyticsOrder{
		{
			Items: []models.AnalyticsOrderItem{
				{Quantity: 1, Price: 50, ProductNameAr: "أول"},
				{Quantity: 1, Price: 50, ProductNameAr: "ثاني"},
			},
		},
	}

	ranked := buildTopProducts(orders)

	require.Len(t, ranked, 2)
	assert.Equal(t, "أول", ranked[0].Name)
	assert.Equal(t, "ثاني", ranked[1].Name)
}
