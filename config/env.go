package config

import "os"

// Environment names the runtime environment the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the environment from process variables. CI=true
// takes precedence over ENV; an unset or unrecognized ENV means development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func IsDevelopment() bool { return GetEnvironment() == Development }
func IsTest() bool        { return GetEnvironment() == Test }
func IsCI() bool          { return GetEnvironment() == CI }
func IsProduction() bool  { return GetEnvironment() == Production }
