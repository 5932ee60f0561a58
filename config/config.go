// Package config loads introspect.yaml and environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dhamidi/introspect/bean"
	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/java/codebase"
	"github.com/dhamidi/introspect/walker"
)

const EnvPrefix = "INTROSPECT"

// Config mirrors the file layout. Settings converts it for the engine.
type Config struct {
	CacheSize      int              `mapstructure:"cache_size"`
	ExcludeClasses []string         `mapstructure:"exclude_classes"`
	Properties     PropertiesConfig `mapstructure:"properties"`
}

type PropertiesConfig struct {
	ReadPrefixes                []string `mapstructure:"read_prefixes"`
	BooleanReadPrefixes         []string `mapstructure:"boolean_read_prefixes"`
	WritePrefixes               []string `mapstructure:"write_prefixes"`
	Visibility                  string   `mapstructure:"visibility"`
	AccessKinds                 []string `mapstructure:"access_kinds"`
	Includes                    []string `mapstructure:"includes"`
	Excludes                    []string `mapstructure:"excludes"`
	ExcludedAnnotations         []string `mapstructure:"excluded_annotations"`
	RoleAnnotations             []string `mapstructure:"role_annotations"`
	IncludeRoleMembers          bool     `mapstructure:"include_role_members"`
	AllowStaticProperties       bool     `mapstructure:"allow_static_properties"`
	AllowSetterWithZeroArgs     bool     `mapstructure:"allow_setter_with_zero_args"`
	AllowSetterWithMultipleArgs bool     `mapstructure:"allow_setter_with_multiple_args"`
	RequireMatchingTypes        bool     `mapstructure:"require_matching_types"`
}

func setDefaults(v *viper.Viper) {
	d := bean.DefaultConfig()
	v.SetDefault("cache_size", walker.DefaultCacheSize)
	v.SetDefault("exclude_classes", []string{})
	v.SetDefault("properties.read_prefixes", d.ReadPrefixes)
	v.SetDefault("properties.boolean_read_prefixes", d.BooleanReadPrefixes)
	v.SetDefault("properties.write_prefixes", d.WritePrefixes)
	v.SetDefault("properties.visibility", string(d.Visibility))
	v.SetDefault("properties.access_kinds", []string{"method", "field"})
	v.SetDefault("properties.includes", []string{})
	v.SetDefault("properties.excludes", []string{})
	v.SetDefault("properties.excluded_annotations", []string{})
	v.SetDefault("properties.role_annotations", d.RoleAnnotations)
	v.SetDefault("properties.include_role_members", d.IncludeRoleMembers)
	v.SetDefault("properties.allow_static_properties", d.AllowStaticProperties)
	v.SetDefault("properties.allow_setter_with_zero_args", d.AllowSetterWithZeroArgs)
	v.SetDefault("properties.allow_setter_with_multiple_args", d.AllowSetterWithMultipleArgs)
	v.SetDefault("properties.require_matching_types", d.RequireMatchingTypes)
}

// Load reads path, or introspect.yaml from dir when path is empty. A missing
// default file is not an error.
func Load(path, dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("introspect")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if _, err := bean.ParseVisibility(c.Properties.Visibility); err != nil {
		return fmt.Errorf("properties.visibility: %w", err)
	}
	for _, k := range c.Properties.AccessKinds {
		if _, err := bean.ParseAccessKind(k); err != nil {
			return fmt.Errorf("properties.access_kinds: %w", err)
		}
	}
	return nil
}

// BeanConfig converts the properties section. Load has already validated it.
func (c *Config) BeanConfig() bean.Config {
	p := c.Properties
	vis, _ := bean.ParseVisibility(p.Visibility)
	var kinds []element.AccessKind
	for _, k := range p.AccessKinds {
		kind, _ := bean.ParseAccessKind(k)
		kinds = append(kinds, kind)
	}
	return bean.Config{
		ReadPrefixes:                p.ReadPrefixes,
		BooleanReadPrefixes:         p.BooleanReadPrefixes,
		WritePrefixes:               p.WritePrefixes,
		Visibility:                  vis,
		AccessKinds:                 kinds,
		Includes:                    p.Includes,
		Excludes:                    p.Excludes,
		ExcludedAnnotations:         p.ExcludedAnnotations,
		RoleAnnotations:             p.RoleAnnotations,
		IncludeRoleMembers:          p.IncludeRoleMembers,
		AllowStaticProperties:       p.AllowStaticProperties,
		AllowSetterWithZeroArgs:     p.AllowSetterWithZeroArgs,
		AllowSetterWithMultipleArgs: p.AllowSetterWithMultipleArgs,
		RequireMatchingTypes:        p.RequireMatchingTypes,
	}
}

func (c *Config) Settings() codebase.Settings {
	return codebase.Settings{
		CacheSize:      c.CacheSize,
		ExcludeClasses: c.ExcludeClasses,
		Properties:     c.BeanConfig(),
	}
}
