package models

// Role identifies which kind of principal a token belongs to
type Role string

const (
	RoleWorker       Role = "worker"
	RoleStartup      Role = "startup"
	RoleManufacturer Role = "manufacturer"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleWorker, RoleStartup, RoleManufacturer:
		return true
	}
	return false
}

// ApplicationStatus represents the lifecycle state of an application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid checks if the ApplicationStatus is valid
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether the status is a terminal decision value.
// Pending is a starting state, never a decision.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// ApplicantType tags which kind of principal submitted a machine application.
// Gigs only accept workers, so gig applications carry no type tag.
type ApplicantType string

const (
	ApplicantTypeWorker  ApplicantType = "worker"
	ApplicantTypeStartup ApplicantType = "startup"
)

// IsValid checks if the ApplicantType is valid
func (t ApplicantType) IsValid() bool {
	switch t {
	case ApplicantTypeWorker, ApplicantTypeStartup:
		return true
	}
	return false
}
