package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleEditor  UserRole = "editor"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleEditor, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role bypasses the suggestion queue and may
// moderate records and polls.
func (r UserRole) IsPrivileged() bool {
	switch r {
	case UserRoleEditor, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// Club identifies which club a poll or candidate belongs to.
type Club string

const (
	ClubFilm Club = "film"
	ClubBook Club = "book"
)

func (c Club) String() string { return string(c) }

func (c Club) IsValid() bool {
	switch c {
	case ClubFilm, ClubBook:
		return true
	}
	return false
}

// RecordKind names a moderated record type. Used in metrics labels and logs.
type RecordKind string

const (
	RecordKindGlossary RecordKind = "glossary"
	RecordKindDish     RecordKind = "dish"
)

func (k RecordKind) String() string { return string(k) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeGlossary  EntityType = "GLOSSARY"
	EntityTypeDish      EntityType = "DISH"
	EntityTypePoll      EntityType = "POLL"
	EntityTypeBallot    EntityType = "BALLOT"
	EntityTypeCandidate EntityType = "CANDIDATE"
	EntityTypeUser      EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeGlossary, EntityTypeDish, EntityTypePoll,
		EntityTypeBallot, EntityTypeCandidate, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionSuggest AuditAction = "SUGGEST"
	AuditActionApply   AuditAction = "APPLY"
	AuditActionDeny    AuditAction = "DENY"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionVote    AuditAction = "VOTE"
	AuditActionClose   AuditAction = "CLOSE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionSuggest, AuditActionApply, AuditActionDeny,
		AuditActionApprove, AuditActionVote, AuditActionClose:
		return true
	}
	return false
}
