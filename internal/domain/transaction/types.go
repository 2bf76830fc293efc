package transaction

import "github.com/google/uuid"

type Status string

const (
	StatusPendingSolicitud Status = "PENDING_SOLICITUD"
	StatusScheduled        Status = "SCHEDULED"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusCompleted        Status = "COMPLETED"
	StatusCanceled         Status = "CANCELED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingSolicitud, StatusScheduled, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Forward-only edges. Terminal states have none.
var transitions = map[Status][]Status{
	StatusPendingSolicitud: {StatusScheduled, StatusCanceled},
	StatusScheduled:        {StatusInProgress, StatusCanceled},
	StatusInProgress:       {StatusCompleted, StatusCanceled},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type OriginKind string

const (
	OriginPosting          OriginKind = "POSTING"
	OriginProactiveService OriginKind = "PROACTIVE_SERVICE"
)

// Origin records what a transaction was created from: an accepted offer on a
// posting, or a direct booking of a professional's advertised service.
type Origin struct {
	kind OriginKind
	id   uuid.UUID
}

func FromPosting(postingID uuid.UUID) Origin {
	return Origin{kind: OriginPosting, id: postingID}
}

func FromProactiveService(serviceID uuid.UUID) Origin {
	return Origin{kind: OriginProactiveService, id: serviceID}
}

func (o Origin) Kind() OriginKind { return o.kind }
func (o Origin) ID() uuid.UUID    { return o.id }

func (o Origin) IsValid() bool {
	return (o.kind == OriginPosting || o.kind == OriginProactiveService) && o.id != uuid.Nil
}

// PostingID returns the posting id for posting-origin transactions.
func (o Origin) PostingID() *uuid.UUID {
	if o.kind != OriginPosting {
		return nil
	}
	id := o.id
	return &id
}

// ServiceID returns the service id for proactive-service transactions.
func (o Origin) ServiceID() *uuid.UUID {
	if o.kind != OriginProactiveService {
		return nil
	}
	id := o.id
	return &id
}

// ActorKind tags who caused a status change in the history log.
type ActorKind string

const (
	ActorClient       ActorKind = "client"
	ActorProfessional ActorKind = "professional"
	ActorAdmin        ActorKind = "admin"
	ActorSystem       ActorKind = "system"
)
