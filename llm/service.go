package llm

import (
	"strings"
	"time"
)

// Service identifies a supported LLM provider. The set of values is closed:
// every Service has an entry in the cooldown table and a credential rule.
type Service string

const (
	ServiceOpenAI    Service = "OpenAI"
	ServiceAnthropic Service = "Anthropic"
	ServiceGoogle    Service = "Google"
	ServiceXAI       Service = "xAI"
	ServiceAristote  Service = "AristoteOnMyDocker"
)

// services lists every member in declaration order.
var services = []Service{
	ServiceOpenAI,
	ServiceAnthropic,
	ServiceGoogle,
	ServiceXAI,
	ServiceAristote,
}

// cooldowns maps every Service to the minimum recommended wait between
// consecutive calls. Total over the enumeration.
var cooldowns = map[Service]time.Duration{
	ServiceOpenAI:    1000 * time.Millisecond,
	ServiceAnthropic: 1000 * time.Millisecond,
	ServiceGoogle:    2000 * time.Millisecond,
	ServiceXAI:       0,
	ServiceAristote:  5000 * time.Millisecond,
}

// Services returns all enumerated services.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ParseService resolves a service name case-insensitively against the
// canonical names. There is no partial or fuzzy matching.
func ParseService(name string) (Service, error) {
	for _, s := range services {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", NewInvalidServiceError(name)
}

// Cooldown returns the minimum recommended wait between consecutive calls
// to the service. Defined for every enumerated Service.
func (s Service) Cooldown() time.Duration {
	return cooldowns[s]
}

// RequiresToken reports whether the service needs a per-call credential.
// The self-hosted Aristote dispatcher runs without one.
func (s Service) RequiresToken() bool {
	return s != ServiceAristote
}

func (s Service) String() string {
	return string(s)
}
