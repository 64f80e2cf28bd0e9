// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic   SecurityLevel = iota // No authentication
	SecurityOptional                      // Token used when present
	SecurityAccess                        // Access token required
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth - Public
	"auth.session": SecurityPublic,

	// Ops - Public
	"ops.healthz": SecurityPublic,
	"ops.metrics": SecurityPublic,
	"ops.uploads": SecurityPublic,

	// Directory - Public
	"members.directory":  SecurityPublic,
	"organizations.list": SecurityPublic,
	"organizations.tree": SecurityPublic,

	// Forum - viewer-dependent flags
	"forum.list":          SecurityPublic,
	"forum.get":           SecurityOptional,
	"forum.comments.list": SecurityOptional,

	// Forum - Access Protected
	"forum.create":          SecurityAccess,
	"forum.update":          SecurityAccess,
	"forum.delete":          SecurityAccess,
	"forum.upload":          SecurityAccess,
	"forum.comments.create": SecurityAccess,
	"forum.comments.update": SecurityAccess,
	"forum.comments.delete": SecurityAccess,

	// Me - Access Protected
	"me.get":                        SecurityAccess,
	"me.upsert":                     SecurityAccess,
	"me.profileImage":               SecurityAccess,
	"applications.submit":           SecurityAccess,
	"applications.progress":         SecurityAccess,
	"applications.interviewChoices": SecurityAccess,
	"mail.dispatch":                 SecurityAccess,

	// Admin - Access Protected (officer check happens in the services)
	"admin.members.list":          SecurityAccess,
	"admin.members.update":        SecurityAccess,
	"admin.members.delete":        SecurityAccess,
	"admin.applicants.interview":  SecurityAccess,
	"admin.interviewNotices.send": SecurityAccess,
	"admin.organizations.list":    SecurityAccess,
	"admin.organizations.create":  SecurityAccess,
	"admin.organizations.delete":  SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
