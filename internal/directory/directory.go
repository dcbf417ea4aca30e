// Package directory maps service names to their official legal-document
// URLs. A curated static catalog answers most queries without any model
// call; unknown services fall through to the optional LLM resolver.
package directory

import "strings"

// Service identifies an online service and where its legal documents live.
type Service struct {
	Name       string `json:"service_name"`
	Domain     string `json:"domain"`
	TermsURL   string `json:"terms_url"`
	PrivacyURL string `json:"privacy_url"`
}

// Lookup resolves a query against the known-service catalog. Matching is
// case-insensitive: an exact key match first, then substring matches in
// either direction. Returns nil when the service is unknown.
func Lookup(query string) *Service {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return nil
	}

	if svc, ok := knownServices[key]; ok {
		copied := svc
		return &copied
	}

	for k, svc := range knownServices {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			copied := svc
			return &copied
		}
	}

	return nil
}

// Known returns the full catalog of known services in no particular order.
func Known() []Service {
	services := make([]Service, 0, len(knownServices))
	for _, svc := range knownServices {
		services = append(services, svc)
	}
	return services
}
