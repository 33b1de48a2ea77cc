// Package server exposes invoice submission and balance lookup over HTTP,
// for callers that cannot speak the remote SOAP dialect themselves.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/yuki-connector/internal/model"
	"github.com/rezonia/yuki-connector/internal/salesxml"
)

// InvoiceService is the slice of the connector the server needs.
type InvoiceService interface {
	ProcessInvoice(ctx context.Context, inv *model.SalesInvoice, mode salesxml.EscapeMode) error
	GetInvoiceBalance(ctx context.Context, reference string) (*model.InvoiceBalance, error)
}

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config  *Config
	router  *gin.Engine
	service InvoiceService
	log     zerolog.Logger
}

// NewServer creates a new API server around the given invoice service.
func NewServer(config *Config, service InvoiceService, log zerolog.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:  config,
		router:  router,
		service: service,
		log:     log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices", s.handleSubmit)
		v1.GET("/invoices/:reference/balance", s.handleBalance)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	req.Invoice.FillDerivedAmounts()

	mode := salesxml.RawValues
	if req.PreEscaped {
		mode = salesxml.PreEscaped
	}

	if err := s.service.ProcessInvoice(c.Request.Context(), &req.Invoice, mode); err != nil {
		s.writeError(c, err)
		return
	}

	s.log.Info().Str("reference", req.Invoice.Reference).Msg("invoice submitted")
	c.JSON(http.StatusCreated, SubmitResponse{Status: "processed", Reference: req.Invoice.Reference})
}

func (s *Server) handleBalance(c *gin.Context) {
	reference := c.Param("reference")

	balance, err := s.service.GetInvoiceBalance(c.Request.Context(), reference)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Reference:      reference,
		OpenAmount:     balance.OpenAmount,
		OriginalAmount: balance.OriginalAmount,
	})
}

// writeError maps the connector error taxonomy onto HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	var rejected *model.InvoiceRejectedError
	if errors.As(err, &rejected) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:    "invoice rejected",
			Details:  rejected.Message,
			Response: rejected.Response,
		})
		return
	}

	var remote *model.RemoteCallError
	if errors.As(err, &remote) {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "remote call failed", Details: remote.Error()})
		return
	}

	var conf *model.ConfigurationError
	if errors.As(err, &conf) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "connector misconfigured", Details: conf.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Details: err.Error()})
}
