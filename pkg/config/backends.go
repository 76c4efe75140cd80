package config

import (
	"fmt"
)

// Backend tier names, cheapest to most capable.
const (
	TierBudget   = "budget"
	TierStandard = "standard"
	TierVIP      = "vip"
)

// Backend provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGRPC      = "grpc"
)

// BackendEndpoint describes one model endpoint bound to a tier.
type BackendEndpoint struct {
	// Provider selects the adapter: anthropic, openai, or grpc.
	Provider string `yaml:"provider"`

	// Model is the provider-specific model identifier. Unused for grpc,
	// where the remote server owns model selection.
	Model string `yaml:"model"`

	// Address is the gRPC target (host:port). Only used by grpc.
	Address string `yaml:"address"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// MaxTokens caps the completion length. Zero means provider default.
	MaxTokens int `yaml:"max_tokens"`
}

// RouteRule maps a (role, stage) pair to a tier. Stage is one of
// writer, auditor, stamp; an empty stage matches all stages for the
// role.
type RouteRule struct {
	Role  string `yaml:"role"`
	Stage string `yaml:"stage"`
	Tier  string `yaml:"tier"`
}

// BackendsConfig wires roles and stages to model tiers.
type BackendsConfig struct {
	// Tiers maps tier name to its endpoint.
	Tiers map[string]*BackendEndpoint `yaml:"tiers"`

	// Routes are matched first-wins; more specific rules first.
	Routes []RouteRule `yaml:"routes"`

	// DefaultTier is used when no route matches.
	DefaultTier string `yaml:"default_tier"`

	// HighRiskKeywords force the vip tier when present in the payload,
	// regardless of routes.
	HighRiskKeywords []string `yaml:"high_risk_keywords"`
}

func DefaultBackendsConfig() *BackendsConfig {
	return &BackendsConfig{
		Tiers: map[string]*BackendEndpoint{
			TierBudget: {
				Provider:  ProviderAnthropic,
				Model:     "claude-3-5-haiku-latest",
				APIKeyEnv: "ANTHROPIC_API_KEY",
				MaxTokens: 4096,
			},
			TierStandard: {
				Provider:  ProviderAnthropic,
				Model:     "claude-sonnet-4-5",
				APIKeyEnv: "ANTHROPIC_API_KEY",
				MaxTokens: 8192,
			},
			TierVIP: {
				Provider:  ProviderOpenAI,
				Model:     "gpt-5",
				APIKeyEnv: "OPENAI_API_KEY",
				MaxTokens: 16384,
			},
		},
		Routes: []RouteRule{
			{Role: "pm", Tier: TierStandard},
			{Role: "strategist", Tier: TierVIP},
			{Role: "reviewer", Stage: "writer", Tier: TierVIP},
			{Role: "coder", Stage: "writer", Tier: TierStandard},
			{Role: "coder", Stage: "auditor", Tier: TierBudget},
			{Role: "qa", Tier: TierBudget},
			{Role: "council", Tier: TierVIP},
			{Stage: "stamp", Tier: TierBudget},
		},
		DefaultTier: TierStandard,
		HighRiskKeywords: []string{
			"payment", "billing", "auth", "security", "migration",
			"production", "결제", "보안", "인증", "배포",
		},
	}
}

// TierFor resolves the tier for a role and stage. High-risk keyword
// forcing is applied by the backend registry, not here.
func (c *BackendsConfig) TierFor(role, stage string) string {
	for _, r := range c.Routes {
		if r.Role != "" && r.Role != role {
			continue
		}
		if r.Stage != "" && r.Stage != stage {
			continue
		}
		return r.Tier
	}
	return c.DefaultTier
}

func (c *BackendsConfig) Validate() error {
	if len(c.Tiers) == 0 {
		return fmt.Errorf("at least one tier must be configured")
	}
	for name, ep := range c.Tiers {
		if ep == nil {
			return fmt.Errorf("tier %s: endpoint must not be nil", name)
		}
		switch ep.Provider {
		case ProviderAnthropic, ProviderOpenAI:
			if ep.Model == "" {
				return fmt.Errorf("tier %s: model is required for provider %s", name, ep.Provider)
			}
		case ProviderGRPC:
			if ep.Address == "" {
				return fmt.Errorf("tier %s: address is required for provider grpc", name)
			}
		default:
			return fmt.Errorf("tier %s: unknown provider %q", name, ep.Provider)
		}
	}
	if _, ok := c.Tiers[c.DefaultTier]; !ok {
		return fmt.Errorf("default_tier %q is not a configured tier", c.DefaultTier)
	}
	for i, r := range c.Routes {
		if _, ok := c.Tiers[r.Tier]; !ok {
			return fmt.Errorf("routes[%d]: tier %q is not a configured tier", i, r.Tier)
		}
	}
	return nil
}
