// Package http provides HTTP handlers for token generation and checksum calculation.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokengen/internal/httputil"
	"github.com/allisson/tokengen/internal/token/http/dto"
	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
	customValidation "github.com/allisson/tokengen/internal/validation"
)

// TokenHandler handles HTTP requests for token operations.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// GenerateHandler returns a new random token.
// POST /generate - Body {"length": <int, optional>}. An empty body selects the default length,
// "length": null the whole encoded token.
// Returns 200 OK with {"token": "..."}.
func (h *TokenHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateTokenRequest

	if err := bindOptionalJSON(c, &req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.tokenUseCase.Generate(c.Request.Context(), req.RequestedLength())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToGenerateTokenResponse(token))
}

// ChecksumHandler returns the code point checksum of the supplied token.
// POST /checksum - Body {"token": "<string>"}; the field is required but may be empty.
// Returns 200 OK with {"checksum": <int>}.
func (h *TokenHandler) ChecksumHandler(c *gin.Context) {
	var req dto.ChecksumRequest

	if err := bindOptionalJSON(c, &req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	checksum, err := h.tokenUseCase.Checksum(c.Request.Context(), *req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapChecksumToChecksumResponse(checksum))
}

// bindOptionalJSON binds the JSON body into obj, treating an empty body as {}.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
