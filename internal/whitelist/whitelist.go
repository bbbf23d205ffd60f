package whitelist

import (
	"strings"

	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

// Checker decides whether a sender belongs to a trusted domain. Subdomains
// of a trusted domain are trusted too.
type Checker struct {
	domains map[string]struct{}
	logger  *zap.Logger
}

// NewChecker creates a new trusted domain checker
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalized := make(map[string]struct{}, len(domains))
	names := make([]string, 0, len(domains))
	for _, domain := range domains {
		d := strings.Trim(strings.ToLower(strings.TrimSpace(domain)), ".")
		if d == "" {
			continue
		}
		if _, dup := normalized[d]; !dup {
			normalized[d] = struct{}{}
			names = append(names, d)
		}
	}

	if len(names) > 0 && logger != nil {
		logger.Info("Initialized trusted domain checker", zap.Strings("domains", names))
	}

	return &Checker{
		domains: normalized,
		logger:  logger,
	}
}

// IsWhitelisted reports whether the sender's domain is trusted. from may be
// a bare address or a "Name <address>" form.
func (c *Checker) IsWhitelisted(from string) bool {
	if len(c.domains) == 0 {
		return false
	}

	if i := strings.LastIndexByte(from, '<'); i >= 0 {
		from = strings.TrimSuffix(from[i+1:], ">")
	}
	domain := core.SenderDomain(from)
	if domain == core.InvalidDomain {
		return false
	}

	for candidate := domain; candidate != ""; {
		if _, ok := c.domains[candidate]; ok {
			if c.logger != nil {
				c.logger.Debug("Domain is whitelisted",
					zap.String("sender_domain", domain),
					zap.String("matched", candidate))
			}
			return true
		}
		_, rest, found := strings.Cut(candidate, ".")
		if !found {
			break
		}
		candidate = rest
	}

	return false
}
