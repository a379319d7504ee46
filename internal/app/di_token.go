package app

import (
	"fmt"

	tokenHTTP "github.com/allisson/tokengen/internal/token/http"
	tokenService "github.com/allisson/tokengen/internal/token/service"
	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
	uiHTTP "github.com/allisson/tokengen/internal/ui/http"
)

// TokenGenerator returns the random token generator backed by crypto/rand.
func (c *Container) TokenGenerator() tokenService.TokenGenerator {
	c.tokenGeneratorInit.Do(func() {
		c.tokenGenerator = tokenService.NewBase64Generator()
	})
	return c.tokenGenerator
}

// ChecksumCalculator returns the code point checksum calculator.
func (c *Container) ChecksumCalculator() tokenService.ChecksumCalculator {
	c.checksumCalculatorInit.Do(func() {
		c.checksumCalculator = tokenService.NewCodePointChecksum()
	})
	return c.checksumCalculator
}

// TokenUseCase returns the token use case, decorated with metrics when enabled.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the HTTP handler for /generate and /checksum.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// UIHandler returns the handler serving the static UI directory.
func (c *Container) UIHandler() *uiHTTP.UIHandler {
	c.uiHandlerInit.Do(func() {
		c.uiHandler = uiHTTP.NewUIHandler(c.config.StaticDir, c.Logger())
	})
	return c.uiHandler
}

// initTokenUseCase creates the token use case and wraps it with business metrics.
func (c *Container) initTokenUseCase() (tokenUseCase.TokenUseCase, error) {
	useCase := tokenUseCase.NewTokenUseCase(
		c.TokenGenerator(),
		c.ChecksumCalculator(),
		c.config.TokenDefaultLength,
	)

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics: %w", err)
	}

	return tokenUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initTokenHandler creates the token HTTP handler.
func (c *Container) initTokenHandler() (*tokenHTTP.TokenHandler, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case: %w", err)
	}

	return tokenHTTP.NewTokenHandler(useCase, c.Logger()), nil
}
