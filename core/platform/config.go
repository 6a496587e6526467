package platform

import "fmt"

// Config holds configuration for the vendor ESL platform API.
type Config struct {
	// BaseURL is the root URL of the vendor API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:9090"`
	// ApiKey is the API key sent with every request.
	ApiKey string `mapstructure:"api_key" default:""`
	// Profile selects the vendor API layout (solum, pricer, generic).
	Profile string `mapstructure:"profile" default:"solum"`
	// TimeoutSeconds is the connection and response timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	ProfileSolum   = "solum"
	ProfilePricer  = "pricer"
	ProfileGeneric = "generic"
)

// IsValidProfile checks if the configured profile is valid.
func (c Config) IsValidProfile() bool {
	switch c.Profile {
	case ProfileSolum, ProfilePricer, ProfileGeneric:
		return true
	default:
		return false
	}
}

// Profile describes the request layout of a vendor API installation.
type Profile struct {
	// Name is the profile identifier.
	Name string
	// LabelsPath is the request path for listing a store's labels.
	// The single %s placeholder receives the store code.
	LabelsPath string
	// HealthPath is the request path probed by Ping.
	HealthPath string
}

// solumProfile targets the SoluM common API.
func solumProfile() Profile {
	return Profile{
		Name:       ProfileSolum,
		LabelsPath: "/api/v2/common/labels?store=%s",
		HealthPath: "/api/v2/common/health",
	}
}

// pricerProfile targets the Pricer public API.
func pricerProfile() Profile {
	return Profile{
		Name:       ProfilePricer,
		LabelsPath: "/api/public/v1/stores/%s/labels",
		HealthPath: "/api/public/v1/health",
	}
}

// genericProfile targets the plain REST layout used by test installations.
func genericProfile() Profile {
	return Profile{
		Name:       ProfileGeneric,
		LabelsPath: "/api/v1/stores/%s/labels",
		HealthPath: "/api/v1/health",
	}
}

// GetProfileByName returns the profile for the given name.
func GetProfileByName(name string) (Profile, error) {
	switch name {
	case ProfileSolum:
		return solumProfile(), nil
	case ProfilePricer:
		return pricerProfile(), nil
	case ProfileGeneric:
		return genericProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown platform profile: %s", name)
	}
}
