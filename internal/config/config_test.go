package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-grid/internal/config"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(contents string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := config.Default()

	s.Assert().Equal(50051, cfg.Server.Port)
	s.Assert().Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Assert().Equal(config.BackendMemory, cfg.Storage.Backend)
	s.Assert().Equal(24*time.Hour, cfg.Storage.MapTTL)
	s.Assert().Equal("info", cfg.Logging.Level)
	s.Assert().Equal(rules.Default(), cfg.Rules)
	s.Assert().NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadEmptyPathReturnsDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Assert().Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadMergesFileOverDefaults() {
	path := s.write(`
server:
  port: 6000
storage:
  backend: redis
  map_ttl: 2h
rules:
  zone_of_control_cost: 5
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Assert().Equal(6000, cfg.Server.Port)
	s.Assert().Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Assert().Equal(config.BackendRedis, cfg.Storage.Backend)
	s.Assert().Equal("localhost:6379", cfg.Storage.RedisEndpoint)
	s.Assert().Equal(2*time.Hour, cfg.Storage.MapTTL)
	s.Assert().Equal(5, cfg.Rules.ZoneOfControlCost)
	s.Assert().Equal(rules.VisionBonus, cfg.Rules.VisionBonus)
	s.Assert().NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.dir, "missing.yaml"))
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ConfigTestSuite) TestLoadInvalidYAML() {
	path := s.write("server: [unclosed")

	_, err := config.Load(path)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		modify func(*config.Config)
		field  string
	}{
		{
			name:   "port out of range",
			modify: func(c *config.Config) { c.Server.Port = 70000 },
			field:  "server.port",
		},
		{
			name:   "unknown backend",
			modify: func(c *config.Config) { c.Storage.Backend = "postgres" },
			field:  "storage.backend",
		},
		{
			name: "redis without endpoint",
			modify: func(c *config.Config) {
				c.Storage.Backend = config.BackendRedis
				c.Storage.RedisEndpoint = ""
			},
			field: "storage.redis_endpoint",
		},
		{
			name:   "unknown log level",
			modify: func(c *config.Config) { c.Logging.Level = "verbose" },
			field:  "logging.level",
		},
		{
			name:   "danger band inverted",
			modify: func(c *config.Config) { c.Rules.DangerMaxRange = 0 },
			field:  "danger_max_range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.modify(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(errors.GetFieldErrors(err), tc.field)
		})
	}
}
