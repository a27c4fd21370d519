package mdp

// Config carries the recognized parsing options. It is fixed at construction
// and shared unchanged with every forked sub-parser.
type Config struct {
	fencedCode     bool
	setextHeadings bool
	frontmatter    bool
	nestLimit      int
}

func defaultConfig() Config {
	return Config{
		fencedCode:     true,
		setextHeadings: true,
		frontmatter:    true,
		nestLimit:      16,
	}
}

// Option configures a Parser at construction.
type Option func(*Config)

// WithFencedCode enables or disables fenced code blocks.
func WithFencedCode(enabled bool) Option {
	return func(cfg *Config) {
		cfg.fencedCode = enabled
	}
}

// WithSetextHeadings enables or disables underline-style headings.
func WithSetextHeadings(enabled bool) Option {
	return func(cfg *Config) {
		cfg.setextHeadings = enabled
	}
}

// WithFrontmatter enables or disables skipping a leading frontmatter fence.
func WithFrontmatter(enabled bool) Option {
	return func(cfg *Config) {
		cfg.frontmatter = enabled
	}
}

// WithNestLimit bounds the fork depth of quotes and list items. Structure
// nested deeper degrades to paragraph text rather than erroring.
func WithNestLimit(limit int) Option {
	return func(cfg *Config) {
		if limit > 0 {
			cfg.nestLimit = limit
		}
	}
}
