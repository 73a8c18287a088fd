package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

// QuoteRoutes registers the quote intake API.
type QuoteRoutes struct {
	intake ports.QuoteIntake
	log    *slog.Logger
}

// NewQuoteRoutes constructs quote routes.
func NewQuoteRoutes(intake ports.QuoteIntake, log *slog.Logger) *QuoteRoutes {
	if log == nil {
		log = slog.Default()
	}
	return &QuoteRoutes{intake: intake, log: log}
}

type saveQuoteRequest struct {
	CustomerName  string                    `json:"customerName" validate:"required"`
	CustomerEmail string                    `json:"customerEmail" validate:"required,email"`
	SiteAddress   string                    `json:"siteAddress" validate:"required"`
	Date          string                    `json:"date" validate:"required,datetime=2006-01-02"`
	Products      []saveQuoteProductRequest `json:"products" validate:"required,min=1,dive"`
}

type saveQuoteProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

type saveQuoteResponse struct {
	Status  string `json:"status"`
	QuoteID int64  `json:"quoteId"`
}

// RegisterRoutes registers quote endpoints.
func (q *QuoteRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/api")
	api.POST("/quotes", q.handleSaveQuote)
}

func (q *QuoteRoutes) handleSaveQuote(c echo.Context) error {
	var req saveQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quote payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.SaveQuoteInput{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		SiteAddress:   strings.TrimSpace(req.SiteAddress),
		Date:          req.Date,
		Products:      make([]ports.QuoteProduct, 0, len(req.Products)),
	}
	for _, product := range req.Products {
		if product.Price.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, "product price must not be negative")
		}
		input.Products = append(input.Products, ports.QuoteProduct{
			Name:  strings.TrimSpace(product.Name),
			Price: product.Price,
		})
	}

	quote, err := q.intake.SaveQuote(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, ports.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		}
		q.log.ErrorContext(c.Request().Context(), "quote intake failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save quote").SetInternal(err)
	}

	return c.JSON(http.StatusOK, saveQuoteResponse{Status: "saved", QuoteID: quote.ID})
}
