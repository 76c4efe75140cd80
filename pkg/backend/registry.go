package backend

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/models"
)

// Registry resolves (role, stage, payload) to a concrete adapter via
// the configured tier map. High-risk payloads are forced onto the vip
// tier when one is configured.
type Registry struct {
	cfg      *config.BackendsConfig
	adapters map[string]Adapter // by tier
}

// NewRegistry builds one adapter per configured tier.
func NewRegistry(cfg *config.BackendsConfig) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("backends config is required")
	}

	adapters := make(map[string]Adapter, len(cfg.Tiers))
	for tier, ep := range cfg.Tiers {
		var (
			a   Adapter
			err error
		)
		switch ep.Provider {
		case config.ProviderAnthropic:
			a = NewAnthropicAdapter(ep)
		case config.ProviderOpenAI:
			a = NewOpenAIAdapter(ep)
		case config.ProviderGRPC:
			a, err = NewGRPCAdapter(ep)
		default:
			err = fmt.Errorf("unknown provider %q", ep.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("tier %s: %w", tier, err)
		}
		adapters[tier] = a
		slog.Info("Backend tier configured", "tier", tier, "provider", ep.Provider, "model", ep.Model)
	}

	return &Registry{cfg: cfg, adapters: adapters}, nil
}

// Resolve picks the adapter and call options for a role, stage, and
// payload. The returned tier name is for logging and metrics.
func (r *Registry) Resolve(role models.Role, stage models.Stage, payload string) (Adapter, Options, string) {
	tier := r.cfg.TierFor(string(role), string(stage))
	if r.highRisk(payload) {
		if _, ok := r.adapters[config.TierVIP]; ok {
			tier = config.TierVIP
		}
	}

	adapter, ok := r.adapters[tier]
	if !ok {
		tier = r.cfg.DefaultTier
		adapter = r.adapters[tier]
	}

	opts := Options{}
	if ep, ok := r.cfg.Tiers[tier]; ok {
		opts.MaxTokens = ep.MaxTokens
	}
	return adapter, opts, tier
}

// highRisk reports whether the payload mentions work that warrants the
// most capable tier regardless of the routed one.
func (r *Registry) highRisk(payload string) bool {
	lower := strings.ToLower(payload)
	for _, kw := range r.cfg.HighRiskKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Close releases adapters holding connections.
func (r *Registry) Close() error {
	var firstErr error
	for tier, a := range r.adapters {
		if closer, ok := a.(io.Closer); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("closing tier %s: %w", tier, err)
			}
		}
	}
	return firstErr
}
