// Package entity contains the core business objects of the project.
package entity

// ActorKind identifies which directory an authenticated session belongs to.
// Each kind travels on its own cookie and is signed with its own key.
type ActorKind string

const (
	// ActorEstablishment is a venue that scans visitor passes.
	ActorEstablishment ActorKind = "establishment"
	// ActorVisitor is a registered person holding a visitor pass.
	ActorVisitor ActorKind = "visitor"
)

// String returns the string representation of the ActorKind.
func (k ActorKind) String() string {
	return string(k)
}

// IsValid checks if the ActorKind is a known value.
func (k ActorKind) IsValid() bool {
	switch k {
	case ActorEstablishment, ActorVisitor:
		return true
	default:
		return false
	}
}

// CookieName returns the session cookie that carries tokens for this kind.
func (k ActorKind) CookieName() string {
	switch k {
	case ActorEstablishment:
		return "jwtEstablishment"
	case ActorVisitor:
		return "jwtVisitor"
	default:
		return ""
	}
}

// LoginPath is where unauthenticated page requests of this kind are sent.
func (k ActorKind) LoginPath() string {
	return "/" + string(k) + "/login"
}

// HomePath is where a freshly authenticated actor of this kind lands.
func (k ActorKind) HomePath() string {
	switch k {
	case ActorVisitor:
		return "/visitor/profile"
	default:
		return "/establishment/home"
	}
}
