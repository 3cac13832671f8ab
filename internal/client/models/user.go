package models

import "strings"

// Role is the closed set of account roles the service knows about.
type Role string

const (
	RoleWorker      Role = "WORKER"
	RoleSubAdmin    Role = "SUBADMIN"
	RoleMasterAdmin Role = "MASTERADMIN"
)

// Session is the authenticated user for the lifetime of a login.
// Exactly one session exists at a time; logout destroys it.
type Session struct {
	Name       string
	Role       Role
	Categories []string
}

func (s *Session) IsWorker() bool      { return s != nil && s.Role == RoleWorker }
func (s *Session) IsSubAdmin() bool    { return s != nil && s.Role == RoleSubAdmin }
func (s *Session) IsMasterAdmin() bool { return s != nil && s.Role == RoleMasterAdmin }

// LoginResponse mirrors the /users/login payload. Older server builds omit
// the role string and only send the boolean flags, so both are kept.
type LoginResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Categories    []string `json:"categories"`
	IsMasterAdmin bool     `json:"isMasterAdmin"`
	IsSubAdmin    bool     `json:"isSubAdmin"`
	IsWorker      bool     `json:"isWorker"`
}

// Session converts the wire payload into a Session with a definite Role.
// The role string wins; legacy flag-only payloads fall back to the flags,
// and anything unrecognized is treated as a worker.
func (r *LoginResponse) Session() *Session {
	role := RoleWorker
	switch Role(strings.ToUpper(strings.TrimSpace(r.Role))) {
	case RoleMasterAdmin:
		role = RoleMasterAdmin
	case RoleSubAdmin:
		role = RoleSubAdmin
	case RoleWorker:
		role = RoleWorker
	default:
		if r.IsMasterAdmin {
			role = RoleMasterAdmin
		} else if r.IsSubAdmin {
			role = RoleSubAdmin
		}
	}
	return &Session{Name: r.Name, Role: role, Categories: r.Categories}
}

// Subadmin is one sub-admin account as managed from the master-admin screens.
type Subadmin struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PhoneLast4 string   `json:"phoneLast4"`
	Categories []string `json:"categories"`
}
