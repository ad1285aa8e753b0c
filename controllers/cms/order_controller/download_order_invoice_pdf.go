package order_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for the order
// @Tags Admin - Orders
// @Produce octet-stream
// @Param id path string true "Order ID (UUID)"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	idParam := c.Param("id")
	log.Printf("[order.download-invoice] request for order: %s", idParam)

	if _, err := uuid.Parse(idParam); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := fetchOrderWithItems(ctx, idParam)
	if err != nil {
		if err == pgx.ErrNoRows {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[order.download-invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBuffer, err := generateOrderInvoicePDF(order)
	if err != nil {
		log.Printf("[order.download-invoice] pdf generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[order.download-invoice] invoice PDF downloaded for order %s", idParam)
}

func generateOrderInvoicePDF(order *models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			name := ""
			if order.CustomerName != nil {
				name = *order.CustomerName
			}
			m.Text(name, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size: 10, Color: darkGray, Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			phone := ""
			if order.CustomerPhone != nil {
				phone = *order.CustomerPhone
			}
			m.Text(phone, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size: 9, Color: mediumGray, Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items table
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for _, item := range order.Items {
		item := item
		name := "Unknown product"
		if item.ProductNameEn != nil && *item.ProductNameEn != "" {
			name = *item.ProductNameEn
		} else if item.ProductNameAr != nil && *item.ProductNameAr != "" {
			name = *item.ProductNameAr
		}
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.2f", item.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(10, func() {
			m.Text("TOTAL", props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("%.2f", order.TotalPrice), props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
