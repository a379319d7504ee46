package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
)

// RunChecksum computes the code point checksum of value and writes it in text or JSON format.
func RunChecksum(
	ctx context.Context,
	tokenUseCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	value string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	checksum, err := tokenUseCase.Checksum(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to compute checksum: %w", err)
	}

	logger.Debug("checksum computed", slog.Int64("checksum", checksum.Value))

	if format == FormatJSON {
		return writeJSON(writer, map[string]any{"checksum": checksum.Value})
	}

	_, err = fmt.Fprintln(writer, checksum.Value)
	return err
}
