// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic  SecurityLevel = iota // No session required
	SecuritySession                      // Authenticated operator session required
)

// RouteSecurityConfig maps dashboard route names to their required security level
var RouteSecurityConfig = map[string]SecurityLevel{
	// Session boundary - Public
	"login":        SecurityPublic,
	"login.submit": SecurityPublic,
	"healthz":      SecurityPublic,

	// Shell - Session Protected
	"logout":         SecuritySession,
	"sidebar.toggle": SecuritySession,
	"dashboard":      SecuritySession,
	"home":           SecuritySession,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := RouteSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown routes
	return SecuritySession
}

// PublicRemoteOperations lists remote API operations sent without a bearer token
var PublicRemoteOperations = map[string]bool{
	"auth.login": true,
}

// RequiresBearer reports whether a remote operation carries the session token
func RequiresBearer(operation string) bool {
	return !PublicRemoteOperations[operation]
}
