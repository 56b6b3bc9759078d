package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/dto"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/middleware"
	"github.com/guttosm/pricescope/internal/query"
	"github.com/guttosm/pricescope/internal/service"
)

var errInvalidOrder = errors.New("order must be asc or desc")

// Handler serves the offer listing and product history endpoints.
//
// Responsibilities:
//   - Parse and validate query parameters into a query.Spec or a date range
//   - Call the service layer with the request context
//   - Map results into response DTOs
type Handler struct {
	offers  service.OfferService
	history service.HistoryService
	now     func() time.Time
}

// NewHandler constructs a Handler over the two read services.
func NewHandler(offers service.OfferService, history service.HistoryService) *Handler {
	return &Handler{offers: offers, history: history, now: time.Now}
}

// ListOffers handles GET /api/v1/offers.
//
// Responses:
//   - 200 OK: one page of offers.
//   - 400 Bad Request: unknown sort key, bad order, page or page size.
//   - 502 Bad Gateway: the store could not be queried; rows is empty and
//     message carries the failure.
//
// ListOffers godoc
// @Summary      List supplier offers
// @Description  Returns one page of offers. Supplier and SKU filters are case-insensitive substring matches combined with OR. has_next is true whenever the page is full.
// @Tags         offers
// @Produce      json
// @Param        supplier   query     string  false  "Supplier substring" example(acme)
// @Param        sku        query     string  false  "Source SKU substring" example(AC-10)
// @Param        sort       query     string  false  "Sort key" Enums(observed_at, supplier, source_sku, price, currency, product_id) default(observed_at)
// @Param        order      query     string  false  "Sort direction" Enums(asc, desc)
// @Param        page       query     int     false  "Zero-based page index" default(0)
// @Param        page_size  query     int     false  "Rows per page" Enums(25, 50, 100) default(25)
// @Success      200        {object}  dto.OfferPageResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502        {object}  dto.OfferPageResponse  "Store unavailable"
// @Router       /api/v1/offers [get]
func (h *Handler) ListOffers(c *gin.Context) {
	// ─── Parse query parameters ───────────────────────────────
	spec, err := parseSpec(c)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid offer query", err)
		return
	}

	// ─── Query service (with request context) ─────────────────
	page, err := h.offers.List(c.Request.Context(), spec)
	resp := dto.NewOfferPageResponse(page, string(spec.Sort), spec.Ascending)
	if err != nil {
		resp.Message = "failed to load offers: " + err.Error()
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProductHistory handles GET /api/v1/products/:id/history.
//
// Responses:
//   - 200 OK: daily series within the range, full-history meta and range stats.
//     An unknown product yields an empty series and meta, not an error.
//   - 400 Bad Request: unknown preset or malformed date.
//   - 502 Bad Gateway: any of the underlying fetches failed.
//
// GetProductHistory godoc
// @Summary      Get product price history
// @Description  Returns the daily price series of a product within a preset or custom range (UTC calendar days), plus summary metadata and range statistics.
// @Tags         products
// @Produce      json
// @Param        id      path      string  true   "Product identifier" example(p-778)
// @Param        preset  query     string  false  "Range preset" Enums(30d, 90d, 6m, 1y, all) default(90d)
// @Param        from    query     string  false  "Start date YYYY-MM-DD, overrides the preset start" example(2024-01-01)
// @Param        to      query     string  false  "End date YYYY-MM-DD, overrides the preset end" example(2024-06-30)
// @Success      200     {object}  dto.ProductHistoryResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse           "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse           "Store unavailable"
// @Router       /api/v1/products/{id}/history [get]
func (h *Handler) GetProductHistory(c *gin.Context) {
	productID := strings.TrimSpace(c.Param("id"))

	// ─── Resolve the date range ───────────────────────────────
	preset, err := daterange.ParsePreset(c.Query("preset"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid preset", err)
		return
	}
	sel := daterange.Selection{Preset: preset, From: c.Query("from"), To: c.Query("to")}
	rng, err := sel.Resolve(h.now())
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date range, expected YYYY-MM-DD", err)
		return
	}

	// ─── Load history (all-or-nothing) ────────────────────────
	hist, err := h.history.Load(c.Request.Context(), productID, rng)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadGateway, "failed to load product history", err)
		return
	}
	if hist == nil {
		hist = &models.ProductHistory{ProductID: productID, From: rng.From, To: rng.To}
	}

	c.JSON(http.StatusOK, dto.NewProductHistoryResponse(hist, preset))
}

// parseSpec reads the listing parameters over the default spec. Without an
// explicit order the default key keeps its default direction and any other
// key sorts ascending.
func parseSpec(c *gin.Context) (query.Spec, error) {
	spec := query.DefaultSpec()
	spec.Supplier = c.Query("supplier")
	spec.SKU = c.Query("sku")

	key, err := query.ParseSortKey(c.Query("sort"))
	if err != nil {
		return spec, err
	}
	if key != spec.Sort {
		spec = spec.ToggleSort(key)
	}

	switch strings.ToLower(c.Query("order")) {
	case "":
	case "asc":
		spec.Ascending = true
	case "desc":
		spec.Ascending = false
	default:
		return spec, fmt.Errorf("%w: %q", errInvalidOrder, c.Query("order"))
	}

	if s := c.Query("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return spec, fmt.Errorf("%w: %q", query.ErrInvalidPage, s)
		}
		spec.Page = n
	}
	if s := c.Query("page_size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return spec, fmt.Errorf("%w: %q", query.ErrInvalidPageSize, s)
		}
		page := spec.Page
		if spec, err = spec.WithPageSize(n); err != nil {
			return spec, err
		}
		spec.Page = page
	}

	return spec, spec.Validate()
}
