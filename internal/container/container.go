// Package container provides dependency injection for the gnc-reports application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/gnc-reports/internal/config"
	"fjacquet/gnc-reports/internal/factory"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/parser"
	"fjacquet/gnc-reports/internal/report"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	generator *report.ReportGenerator

	parsers map[factory.ParserType]parser.FullParser
}

// NewContainer creates and wires all application dependencies from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	parsers := make(map[factory.ParserType]parser.FullParser, len(factory.ParserTypes))
	for _, pt := range factory.ParserTypes {
		p, err := factory.GetParserWithLogger(pt, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s parser: %w", pt, err)
		}
		parsers[pt] = p
	}

	generator := report.NewReportGenerator(logger)
	generator.SetDelimiter(cfg.Delimiter())

	logger.Debug("Container initialized successfully",
		logging.F("parsers_count", len(parsers)),
		logging.F("strict", cfg.Parser.Strict))

	return &Container{
		logger:    logger,
		config:    cfg,
		generator: generator,
		parsers:   parsers,
	}, nil
}

// GetParser returns the parser registered for pt.
func (c *Container) GetParser(pt factory.ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetBookParser returns the parser selected by the parser.strict setting.
func (c *Container) GetBookParser() parser.FullParser {
	// Both types are always registered.
	p, _ := c.GetParser(factory.ParserTypeFor(c.config.Parser.Strict))
	return p
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[factory.ParserType]parser.FullParser {
	result := make(map[factory.ParserType]parser.FullParser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetReportGenerator returns the report generator configured with the CSV delimiter.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
