package container

import (
	"testing"

	"fjacquet/gnc-reports/internal/config"
	"fjacquet/gnc-reports/internal/factory"
	"fjacquet/gnc-reports/internal/gncparser"
	"fjacquet/gnc-reports/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	_, err := NewContainer(nil)
	assert.ErrorContains(t, err, "configuration cannot be nil")

	cfg := config.DefaultConfig()
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Same(t, cfg, c.GetConfig())
	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetReportGenerator())
	assert.NoError(t, c.Close())
}

func TestNewContainerWithLogger(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := NewContainerWithLogger(nil, logging.NewMockLogger())
	assert.Error(t, err)
	_, err = NewContainerWithLogger(cfg, nil)
	assert.ErrorContains(t, err, "logger cannot be nil")

	logger := logging.NewMockLogger()
	c, err := NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	assert.Same(t, logger, c.GetLogger())
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestContainer_GetParser(t *testing.T) {
	c, err := NewContainerWithLogger(config.DefaultConfig(), logging.NewMockLogger())
	require.NoError(t, err)

	for _, pt := range factory.ParserTypes {
		p, err := c.GetParser(pt)
		require.NoError(t, err)
		assert.NotNil(t, p)
	}

	_, err = c.GetParser("pdf")
	assert.ErrorContains(t, err, "unknown parser type")

	parsers := c.GetParsers()
	assert.Len(t, parsers, len(factory.ParserTypes))
	delete(parsers, factory.GnuCash)
	_, err = c.GetParser(factory.GnuCash)
	assert.NoError(t, err, "the registry is copied")
}

func TestContainer_GetBookParser(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
	}{
		{"strict", true},
		{"lenient", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Parser.Strict = tt.strict
			c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
			require.NoError(t, err)

			p, ok := c.GetBookParser().(*gncparser.Parser)
			require.True(t, ok)
			assert.Equal(t, tt.strict, p.Strict())
		})
	}
}

func TestContainer_GeneratorDelimiter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CSV.Delimiter = ";"
	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, ';', c.GetReportGenerator().Delimiter())
}
