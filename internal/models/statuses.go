package models

type EventStatus string
type ReportStatus string
type VerificationStatus string
type MessageType string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusPlanned  EventStatus = "planned"
	EventStatusCanceled EventStatus = "canceled"
	EventStatusDeclined EventStatus = "declined"

	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusBanned    ReportStatus = "banned"
	ReportStatusWarned    ReportStatus = "warned"
	ReportStatusDismissed ReportStatus = "dismissed"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"

	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
)

// Allowed status transitions per entity. A status missing from its map is terminal.
var (
	eventTransitions = map[EventStatus][]EventStatus{
		EventStatusPending: {EventStatusPlanned, EventStatusDeclined, EventStatusCanceled},
		EventStatusPlanned: {EventStatusCanceled},
	}

	reportTransitions = map[ReportStatus][]ReportStatus{
		ReportStatusPending: {ReportStatusResolved, ReportStatusBanned, ReportStatusWarned, ReportStatusDismissed},
	}

	verificationTransitions = map[VerificationStatus][]VerificationStatus{
		VerificationStatusPending: {VerificationStatusApproved, VerificationStatusRejected},
	}
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusPlanned, EventStatusCanceled, EventStatusDeclined:
		return true
	}
	return false
}

func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusBanned, ReportStatusWarned, ReportStatusDismissed:
		return true
	}
	return false
}

func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	for _, allowed := range reportTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

func (s VerificationStatus) CanTransitionTo(next VerificationStatus) bool {
	for _, allowed := range verificationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
