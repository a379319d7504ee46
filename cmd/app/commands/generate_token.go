package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
)

// RunGenerateToken generates a token and writes it to writer in text or JSON format.
// A nil length uses the configured default.
func RunGenerateToken(
	ctx context.Context,
	tokenUseCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	length *int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := tokenUseCase.Generate(ctx, length)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Debug("token generated", slog.Int("length", token.Len()))

	if format == FormatJSON {
		return writeJSON(writer, map[string]any{"token": token.Value})
	}

	_, err = fmt.Fprintln(writer, token.Value)
	return err
}
