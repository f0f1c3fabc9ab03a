package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/clock"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	_ "github.com/Astemirdum/library-catalog/swagger"
)

type Handler struct {
	catalogSvc CatalogService
	clock      clock.Clock
	log        *zap.Logger
}

func New(catalogSvc CatalogService, clk clock.Clock, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		clock:      clk,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	h.register(api)

	return e
}

func (h *Handler) register(api *echo.Group) {
	api.GET("/books", h.ListBooks)
	api.POST("/books", h.AddBook)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/search", h.Search)

	api.POST("/books/:bookId/borrow", h.Borrow)
	api.POST("/books/:bookId/return", h.Return)

	api.GET("/late_fee/:patronId/:bookId", h.LateFee)
	api.POST("/late_fee/:patronId/:bookId/pay", h.PayLateFees)

	api.GET("/payments/:transactionId", h.VerifyPayment)
	api.POST("/payments/:transactionId/refund", h.RefundLateFee)

	api.GET("/patrons/:patronId/status", h.PatronStatus)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListBooks godoc
// @Summary      List the catalog
// @Tags         books
// @Produce      json
// @Success      200  {array}   model.Book
// @Router       /api/v1/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// AddBook godoc
// @Summary      Add a book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        book  body      model.AddBookRequest  true  "book"
// @Success      201   {object}  model.AddBookResponse
// @Failure      400,409  {object}  echo.HTTPError
// @Router       /api/v1/books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.catalogSvc.AddBook(c.Request().Context(), req, h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// Search godoc
// @Summary      Search the catalog
// @Tags         books
// @Produce      json
// @Param        q     query     string  true   "search term"
// @Param        type  query     string  false  "title, author or isbn"  default(title)
// @Success      200   {array}   model.Book
// @Router       /api/v1/search [get]
func (h *Handler) Search(c echo.Context) error {
	by := model.SearchType(c.QueryParam("type"))
	if by == "" {
		by = model.SearchByTitle
	}
	books, err := h.catalogSvc.SearchBooks(c.Request().Context(), c.QueryParam("q"), by)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// Borrow godoc
// @Summary      Borrow a book
// @Tags         lending
// @Accept       json
// @Produce      json
// @Param        bookId  path      int                  true  "book id"
// @Param        patron  body      model.PatronRequest  true  "patron"
// @Success      200     {object}  model.BorrowResponse
// @Failure      400,404,409  {object}  echo.HTTPError
// @Router       /api/v1/books/{bookId}/borrow [post]
func (h *Handler) Borrow(c echo.Context) error {
	bookID, patronID, err := h.lendingParams(c)
	if err != nil {
		return err
	}
	resp, err := h.catalogSvc.Borrow(c.Request().Context(), patronID, bookID, h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Return godoc
// @Summary      Return a borrowed book
// @Tags         lending
// @Accept       json
// @Produce      json
// @Param        bookId  path      int                  true  "book id"
// @Param        patron  body      model.PatronRequest  true  "patron"
// @Success      200     {object}  model.ReturnResponse
// @Failure      400,404,409  {object}  echo.HTTPError
// @Router       /api/v1/books/{bookId}/return [post]
func (h *Handler) Return(c echo.Context) error {
	bookID, patronID, err := h.lendingParams(c)
	if err != nil {
		return err
	}
	resp, err := h.catalogSvc.Return(c.Request().Context(), patronID, bookID, h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// LateFee godoc
// @Summary      Late fee owed for a loan right now
// @Tags         fees
// @Produce      json
// @Param        patronId  path      string  true  "patron id"
// @Param        bookId    path      int     true  "book id"
// @Success      200       {object}  model.LateFeeResult
// @Router       /api/v1/late_fee/{patronId}/{bookId} [get]
func (h *Handler) LateFee(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	res, err := h.catalogSvc.LateFee(c.Request().Context(), c.Param("patronId"), bookID, h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// PayLateFees godoc
// @Summary      Pay the late fee of a loan
// @Tags         fees
// @Produce      json
// @Param        patronId  path      string  true  "patron id"
// @Param        bookId    path      int     true  "book id"
// @Success      200       {object}  model.PaymentResponse
// @Failure      400,402,404,409  {object}  echo.HTTPError
// @Router       /api/v1/late_fee/{patronId}/{bookId}/pay [post]
func (h *Handler) PayLateFees(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	resp, err := h.catalogSvc.PayLateFees(c.Request().Context(), c.Param("patronId"), bookID, h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RefundLateFee godoc
// @Summary      Refund a late fee payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        transactionId  path      string               true  "transaction id"
// @Param        refund         body      model.RefundRequest  true  "refund"
// @Success      200            {object}  model.RefundResponse
// @Failure      400,402  {object}  echo.HTTPError
// @Router       /api/v1/payments/{transactionId}/refund [post]
func (h *Handler) RefundLateFee(c echo.Context) error {
	var req model.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.catalogSvc.RefundLateFee(c.Request().Context(), c.Param("transactionId"), req.Amount.Decimal, h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) VerifyPayment(c echo.Context) error {
	st, err := h.catalogSvc.VerifyPayment(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// PatronStatus godoc
// @Summary      Patron loans, fees and history
// @Tags         patrons
// @Produce      json
// @Param        patronId  path      string  true  "patron id"
// @Success      200       {object}  model.PatronStatus
// @Failure      400  {object}  echo.HTTPError
// @Router       /api/v1/patrons/{patronId}/status [get]
func (h *Handler) PatronStatus(c echo.Context) error {
	st, err := h.catalogSvc.PatronStatus(c.Request().Context(), c.Param("patronId"), h.clock.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) lendingParams(c echo.Context) (int64, string, error) {
	bookID, err := bookIDParam(c)
	if err != nil {
		return 0, "", err
	}
	var req model.PatronRequest
	if err := c.Bind(&req); err != nil {
		return 0, "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return 0, "", h.httpError(errs.ErrInvalidPatronID)
	}
	return bookID, req.PatronID, nil
}

func bookIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid bookId")
	}
	return id, nil
}
